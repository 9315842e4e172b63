package services

import (
	"context"
	"time"

	"prospecta/internal/app/models"
	"prospecta/internal/app/repositories"
)

// snapshotter is the rollback surface of a fake store: snapshot
// returns a closure restoring the state captured at call time.
type snapshotter interface {
	snapshot() func()
}

// fakeTx satisfies TxRunner without a database. An error from fn
// restores every store to its pre-transaction state, mirroring a
// rollback; calls counts how many transactions were opened.
type fakeTx struct {
	calls  int
	stores []snapshotter
}

func (t *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++

	restores := make([]func(), 0, len(t.stores))
	for _, store := range t.stores {
		restores = append(restores, store.snapshot())
	}

	if err := fn(ctx); err != nil {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
		return err
	}
	return nil
}

type fakeSchoolRepo struct {
	nextID  int64
	schools map[int64]*models.School
	err     error
}

func newFakeSchoolRepo() *fakeSchoolRepo {
	return &fakeSchoolRepo{schools: make(map[int64]*models.School)}
}

func (r *fakeSchoolRepo) snapshot() func() {
	saved := make(map[int64]*models.School, len(r.schools))
	for id, school := range r.schools {
		copied := *school
		saved[id] = &copied
	}
	savedNext := r.nextID
	return func() { r.schools, r.nextID = saved, savedNext }
}

func (r *fakeSchoolRepo) Create(ctx context.Context, school *models.School) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.schools {
		if existing.Name == school.Name {
			return repositories.ErrSchoolNameTaken
		}
	}
	r.nextID++
	school.ID = r.nextID
	school.CreatedAt = time.Now()
	school.UpdatedAt = school.CreatedAt
	copied := *school
	r.schools[school.ID] = &copied
	return nil
}

func (r *fakeSchoolRepo) GetByID(ctx context.Context, id int64) (*models.School, error) {
	if r.err != nil {
		return nil, r.err
	}
	school, ok := r.schools[id]
	if !ok {
		return nil, repositories.ErrSchoolNotFound
	}
	copied := *school
	return &copied, nil
}

func (r *fakeSchoolRepo) GetAll(ctx context.Context) ([]*models.School, error) {
	if r.err != nil {
		return nil, r.err
	}
	var schools []*models.School
	for _, school := range r.schools {
		copied := *school
		schools = append(schools, &copied)
	}
	return schools, nil
}

func (r *fakeSchoolRepo) Update(ctx context.Context, school *models.School) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.schools[school.ID]; !ok {
		return repositories.ErrSchoolNotFound
	}
	for _, existing := range r.schools {
		if existing.Name == school.Name && existing.ID != school.ID {
			return repositories.ErrSchoolNameTaken
		}
	}
	copied := *school
	r.schools[school.ID] = &copied
	return nil
}

func (r *fakeSchoolRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.schools[id]; !ok {
		return repositories.ErrSchoolNotFound
	}
	delete(r.schools, id)
	return nil
}

type fakeFormationRepo struct {
	nextID     int64
	formations map[int64]*models.Formation
	err        error
}

func newFakeFormationRepo() *fakeFormationRepo {
	return &fakeFormationRepo{formations: make(map[int64]*models.Formation)}
}

func (r *fakeFormationRepo) snapshot() func() {
	saved := make(map[int64]*models.Formation, len(r.formations))
	for id, formation := range r.formations {
		copied := *formation
		saved[id] = &copied
	}
	savedNext := r.nextID
	return func() { r.formations, r.nextID = saved, savedNext }
}

func (r *fakeFormationRepo) Create(ctx context.Context, formation *models.Formation) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.formations {
		if existing.Name == formation.Name {
			return repositories.ErrFormationNameTaken
		}
	}
	r.nextID++
	formation.ID = r.nextID
	formation.CreatedAt = time.Now()
	formation.UpdatedAt = formation.CreatedAt
	copied := *formation
	r.formations[formation.ID] = &copied
	return nil
}

func (r *fakeFormationRepo) GetByID(ctx context.Context, id int64) (*models.Formation, error) {
	if r.err != nil {
		return nil, r.err
	}
	formation, ok := r.formations[id]
	if !ok {
		return nil, repositories.ErrFormationNotFound
	}
	copied := *formation
	return &copied, nil
}

func (r *fakeFormationRepo) GetAll(ctx context.Context) ([]*models.Formation, error) {
	if r.err != nil {
		return nil, r.err
	}
	var formations []*models.Formation
	for _, formation := range r.formations {
		copied := *formation
		formations = append(formations, &copied)
	}
	return formations, nil
}

func (r *fakeFormationRepo) Update(ctx context.Context, formation *models.Formation) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.formations[formation.ID]; !ok {
		return repositories.ErrFormationNotFound
	}
	for _, existing := range r.formations {
		if existing.Name == formation.Name && existing.ID != formation.ID {
			return repositories.ErrFormationNameTaken
		}
	}
	copied := *formation
	r.formations[formation.ID] = &copied
	return nil
}

func (r *fakeFormationRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.formations[id]; !ok {
		return repositories.ErrFormationNotFound
	}
	delete(r.formations, id)
	return nil
}

type fakeEventRepo struct {
	nextID       int64
	events       map[int64]*models.Event
	interactions *fakeInteractionRepo
	err          error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*models.Event)}
}

func (r *fakeEventRepo) snapshot() func() {
	saved := make(map[int64]*models.Event, len(r.events))
	for id, event := range r.events {
		copied := *event
		saved[id] = &copied
	}
	savedNext := r.nextID
	return func() { r.events, r.nextID = saved, savedNext }
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	event.ID = r.nextID
	event.CreatedAt = time.Now()
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	event, ok := r.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) GetAll(ctx context.Context) ([]*models.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	var events []*models.Event
	for _, event := range r.events {
		copied := *event
		events = append(events, &copied)
	}
	return events, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.events[event.ID]; !ok {
		return repositories.ErrEventNotFound
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

// Delete removes an event and, like the ON DELETE CASCADE foreign key,
// every interaction referencing it.
func (r *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	delete(r.events, id)
	if r.interactions != nil {
		for interactionID, interaction := range r.interactions.interactions {
			if interaction.EventID == id {
				delete(r.interactions.interactions, interactionID)
			}
		}
	}
	return nil
}

type fakeStudentRepo struct {
	nextID       int64
	students     map[int64]*models.Student
	interactions *fakeInteractionRepo
	err          error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student)}
}

func (r *fakeStudentRepo) snapshot() func() {
	saved := make(map[int64]*models.Student, len(r.students))
	for id, student := range r.students {
		copied := *student
		saved[id] = &copied
	}
	savedNext := r.nextID
	return func() { r.students, r.nextID = saved, savedNext }
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.students {
		if existing.Email == student.Email {
			return repositories.ErrStudentEmailTaken
		}
	}
	r.nextID++
	student.ID = r.nextID
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if r.err != nil {
		return nil, r.err
	}
	student, ok := r.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) GetAll(ctx context.Context, schoolID, formationID *int64) ([]*models.Student, error) {
	if r.err != nil {
		return nil, r.err
	}
	var students []*models.Student
	for _, student := range r.students {
		if schoolID != nil && (student.SchoolID == nil || *student.SchoolID != *schoolID) {
			continue
		}
		if formationID != nil && (student.MainFormationID == nil || *student.MainFormationID != *formationID) {
			continue
		}
		copied := *student
		students = append(students, &copied)
	}
	return students, nil
}

func (r *fakeStudentRepo) CountBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, student := range r.students {
		if student.SchoolID != nil && *student.SchoolID == schoolID {
			count++
		}
	}
	return count, nil
}

func (r *fakeStudentRepo) CountByFormationID(ctx context.Context, formationID int64) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, student := range r.students {
		if student.MainFormationID != nil && *student.MainFormationID == formationID {
			count++
		}
	}
	return count, nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.students[student.ID]; !ok {
		return repositories.ErrStudentNotFound
	}
	for _, existing := range r.students {
		if existing.Email == student.Email && existing.ID != student.ID {
			return repositories.ErrStudentEmailTaken
		}
	}
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

// Delete removes a student and, like the ON DELETE CASCADE foreign
// key, every interaction referencing them.
func (r *fakeStudentRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.students[id]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(r.students, id)
	if r.interactions != nil {
		for interactionID, interaction := range r.interactions.interactions {
			if interaction.StudentID == id {
				delete(r.interactions.interactions, interactionID)
			}
		}
	}
	return nil
}

type fakeInteractionRepo struct {
	nextID       int64
	interactions map[int64]*models.Interaction
	err          error
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{interactions: make(map[int64]*models.Interaction)}
}

func (r *fakeInteractionRepo) snapshot() func() {
	saved := make(map[int64]*models.Interaction, len(r.interactions))
	for id, interaction := range r.interactions {
		copied := *interaction
		saved[id] = &copied
	}
	savedNext := r.nextID
	return func() { r.interactions, r.nextID = saved, savedNext }
}

func (r *fakeInteractionRepo) Create(ctx context.Context, interaction *models.Interaction) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.interactions {
		if existing.StudentID == interaction.StudentID && existing.EventID == interaction.EventID {
			return repositories.ErrInteractionDuplicate
		}
	}
	r.nextID++
	interaction.ID = r.nextID
	interaction.InteractionDate = time.Now()
	copied := *interaction
	r.interactions[interaction.ID] = &copied
	return nil
}

func (r *fakeInteractionRepo) GetByID(ctx context.Context, id int64) (*models.Interaction, error) {
	if r.err != nil {
		return nil, r.err
	}
	interaction, ok := r.interactions[id]
	if !ok {
		return nil, repositories.ErrInteractionNotFound
	}
	copied := *interaction
	return &copied, nil
}

func (r *fakeInteractionRepo) GetAll(ctx context.Context, studentID, eventID *int64) ([]*models.Interaction, error) {
	if r.err != nil {
		return nil, r.err
	}
	var interactions []*models.Interaction
	for _, interaction := range r.interactions {
		if studentID != nil && interaction.StudentID != *studentID {
			continue
		}
		if eventID != nil && interaction.EventID != *eventID {
			continue
		}
		copied := *interaction
		interactions = append(interactions, &copied)
	}
	return interactions, nil
}

func (r *fakeInteractionRepo) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, interaction := range r.interactions {
		if interaction.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *fakeInteractionRepo) Delete(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.interactions[id]; !ok {
		return repositories.ErrInteractionNotFound
	}
	delete(r.interactions, id)
	return nil
}

// testEnv bundles the fakes behind a fully wired service graph.
type testEnv struct {
	schoolRepo      *fakeSchoolRepo
	formationRepo   *fakeFormationRepo
	eventRepo       *fakeEventRepo
	studentRepo     *fakeStudentRepo
	interactionRepo *fakeInteractionRepo
	tx              *fakeTx

	schools      SchoolService
	formations   FormationService
	events       EventService
	students     StudentService
	interactions InteractionService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		schoolRepo:      newFakeSchoolRepo(),
		formationRepo:   newFakeFormationRepo(),
		eventRepo:       newFakeEventRepo(),
		studentRepo:     newFakeStudentRepo(),
		interactionRepo: newFakeInteractionRepo(),
		tx:              &fakeTx{},
	}
	env.studentRepo.interactions = env.interactionRepo
	env.eventRepo.interactions = env.interactionRepo
	env.tx.stores = []snapshotter{
		env.schoolRepo, env.formationRepo, env.eventRepo,
		env.studentRepo, env.interactionRepo,
	}

	env.schools = NewSchoolService(env.schoolRepo, env.studentRepo, env.tx, nil)
	env.formations = NewFormationService(env.formationRepo, env.studentRepo, env.tx, nil)
	env.events = NewEventService(env.eventRepo, env.interactionRepo, env.tx)
	env.students = NewStudentService(env.studentRepo, env.schools, env.formations, env.tx)
	env.interactions = NewInteractionService(env.interactionRepo, env.students, env.events, env.tx)

	return env
}

func ptr[T any](v T) *T {
	return &v
}
