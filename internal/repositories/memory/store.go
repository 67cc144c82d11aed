// Package memory - хранилище в памяти для разработки и тестов.
// Выбирается при database.driver = "memory".
package memory

import (
	"sort"
	"sync"
	"time"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
)

// data - все таблицы и счетчики идентификаторов
type data struct {
	users       map[uint]models.User
	influencers map[uint]models.Influencer
	projects    map[uint]models.Project
	pis         map[uint]models.ProjectInfluencer
	scenarios   map[uint]models.Scenario
	materials   map[uint]models.Material
	pubs        map[uint]models.Publication
	comments    map[uint]models.Comment
	activities  map[uint]models.Activity

	userSeq       uint
	influencerSeq uint
	projectSeq    uint
	piSeq         uint
	scenarioSeq   uint
	materialSeq   uint
	pubSeq        uint
	commentSeq    uint
	activitySeq   uint
}

func newData() *data {
	return &data{
		users:       make(map[uint]models.User),
		influencers: make(map[uint]models.Influencer),
		projects:    make(map[uint]models.Project),
		pis:         make(map[uint]models.ProjectInfluencer),
		scenarios:   make(map[uint]models.Scenario),
		materials:   make(map[uint]models.Material),
		pubs:        make(map[uint]models.Publication),
		comments:    make(map[uint]models.Comment),
		activities:  make(map[uint]models.Activity),
	}
}

func (d *data) clone() *data {
	c := newData()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.influencers {
		c.influencers[k] = v
	}
	for k, v := range d.projects {
		c.projects[k] = v
	}
	for k, v := range d.pis {
		c.pis[k] = v
	}
	for k, v := range d.scenarios {
		c.scenarios[k] = v
	}
	for k, v := range d.materials {
		c.materials[k] = v
	}
	for k, v := range d.pubs {
		c.pubs[k] = v
	}
	for k, v := range d.comments {
		c.comments[k] = v
	}
	for k, v := range d.activities {
		c.activities[k] = v
	}
	c.userSeq = d.userSeq
	c.influencerSeq = d.influencerSeq
	c.projectSeq = d.projectSeq
	c.piSeq = d.piSeq
	c.scenarioSeq = d.scenarioSeq
	c.materialSeq = d.materialSeq
	c.pubSeq = d.pubSeq
	c.commentSeq = d.commentSeq
	c.activitySeq = d.activitySeq
	return c
}

// Store - потокобезопасная реализация repositories.Store в памяти
type Store struct {
	mu sync.RWMutex
	d  *data
}

// NewStore создает пустое хранилище в памяти
func NewStore() *Store {
	return &Store{d: newData()}
}

func (s *Store) Users() repositories.UserRepository {
	return &userRepo{s: s}
}

func (s *Store) Influencers() repositories.InfluencerRepository {
	return &influencerRepo{s: s}
}

func (s *Store) Projects() repositories.ProjectRepository {
	return &projectRepo{s: s}
}

func (s *Store) ProjectInfluencers() repositories.ProjectInfluencerRepository {
	return &piRepo{s: s}
}

func (s *Store) Scenarios() repositories.ScenarioRepository {
	return &scenarioRepo{s: s}
}

func (s *Store) Materials() repositories.MaterialRepository {
	return &materialRepo{s: s}
}

func (s *Store) Publications() repositories.PublicationRepository {
	return &publicationRepo{s: s}
}

func (s *Store) Comments() repositories.CommentRepository {
	return &commentRepo{s: s}
}

func (s *Store) Activities() repositories.ActivityRepository {
	return &activityRepo{s: s}
}

// Transaction выполняет fn на копии данных и подменяет состояние
// только при успехе. Ошибка fn оставляет хранилище нетронутым.
func (s *Store) Transaction(fn func(repositories.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Store{d: s.d.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	s.d = tx.d
	return nil
}

func nowIfZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// --- users ---

type userRepo struct {
	s *Store
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.d.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepo) FindByUsername(username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.d.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *userRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.d.users {
		if u.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.s.d.userSeq++
	user.ID = r.s.d.userSeq
	user.CreatedAt = nowIfZero(user.CreatedAt)
	r.s.d.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindAll() ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := make([]models.User, 0, len(r.s.d.users))
	for _, u := range r.s.d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// --- influencers ---

type influencerRepo struct {
	s *Store
}

func (r *influencerRepo) FindByID(id uint) (*models.Influencer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inf, ok := r.s.d.influencers[id]
	if !ok {
		return nil, repositories.ErrInfluencerNotFound
	}
	return &inf, nil
}

func (r *influencerRepo) FindByUserID(userID uint) (*models.Influencer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, inf := range r.s.d.influencers {
		if inf.UserID != nil && *inf.UserID == userID {
			inf := inf
			return &inf, nil
		}
	}
	return nil, repositories.ErrInfluencerNotFound
}

func (r *influencerRepo) Create(influencer *models.Influencer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.influencerSeq++
	influencer.ID = r.s.d.influencerSeq
	r.s.d.influencers[influencer.ID] = *influencer
	return nil
}

func (r *influencerRepo) FindAll() ([]models.Influencer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	influencers := make([]models.Influencer, 0, len(r.s.d.influencers))
	for _, inf := range r.s.d.influencers {
		influencers = append(influencers, inf)
	}
	sort.Slice(influencers, func(i, j int) bool { return influencers[i].ID < influencers[j].ID })
	return influencers, nil
}

// --- projects ---

type projectRepo struct {
	s *Store
}

func (r *projectRepo) FindByID(id uint) (*models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.d.projects[id]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	return &p, nil
}

func sortProjectsNewestFirst(projects []models.Project) {
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID > projects[j].ID
	})
}

func (r *projectRepo) FindAll() ([]models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	projects := make([]models.Project, 0, len(r.s.d.projects))
	for _, p := range r.s.d.projects {
		projects = append(projects, p)
	}
	sortProjectsNewestFirst(projects)
	return projects, nil
}

func (r *projectRepo) FindByManagerID(managerID uint) ([]models.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var projects []models.Project
	for _, p := range r.s.d.projects {
		if p.ManagerID == managerID {
			projects = append(projects, p)
		}
	}
	sortProjectsNewestFirst(projects)
	return projects, nil
}

func (r *projectRepo) Create(project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.projectSeq++
	project.ID = r.s.d.projectSeq
	project.CreatedAt = nowIfZero(project.CreatedAt)
	r.s.d.projects[project.ID] = *project
	return nil
}

func (r *projectRepo) Update(project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.projects[project.ID]; !ok {
		return repositories.ErrProjectNotFound
	}
	r.s.d.projects[project.ID] = *project
	return nil
}

func (r *projectRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	delete(r.s.d.projects, id)
	return nil
}

// --- project influencers ---

type piRepo struct {
	s *Store
}

func (r *piRepo) FindByPair(projectID, influencerID uint) (*models.ProjectInfluencer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, pi := range r.s.d.pis {
		if pi.ProjectID == projectID && pi.InfluencerID == influencerID {
			pi := pi
			return &pi, nil
		}
	}
	return nil, repositories.ErrProjectInfluencerNotFound
}

func (r *piRepo) FindByProject(projectID uint) ([]models.ProjectInfluencer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var pis []models.ProjectInfluencer
	for _, pi := range r.s.d.pis {
		if pi.ProjectID == projectID {
			pis = append(pis, pi)
		}
	}
	sort.Slice(pis, func(i, j int) bool { return pis[i].ID < pis[j].ID })
	return pis, nil
}

func (r *piRepo) FindByInfluencer(influencerID uint) ([]models.ProjectInfluencer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var pis []models.ProjectInfluencer
	for _, pi := range r.s.d.pis {
		if pi.InfluencerID == influencerID {
			pis = append(pis, pi)
		}
	}
	sort.Slice(pis, func(i, j int) bool { return pis[i].ID < pis[j].ID })
	return pis, nil
}

func (r *piRepo) Create(pi *models.ProjectInfluencer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.d.pis {
		if existing.ProjectID == pi.ProjectID && existing.InfluencerID == pi.InfluencerID {
			return repositories.ErrProjectInfluencerExists
		}
	}
	r.s.d.piSeq++
	pi.ID = r.s.d.piSeq
	r.s.d.pis[pi.ID] = *pi
	return nil
}

func (r *piRepo) Update(pi *models.ProjectInfluencer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.pis[pi.ID]; !ok {
		return repositories.ErrProjectInfluencerNotFound
	}
	r.s.d.pis[pi.ID] = *pi
	return nil
}

func (r *piRepo) DeleteByProject(projectID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, pi := range r.s.d.pis {
		if pi.ProjectID == projectID {
			delete(r.s.d.pis, id)
		}
	}
	return nil
}

// --- scenarios ---

type scenarioRepo struct {
	s *Store
}

func (r *scenarioRepo) FindByID(id uint) (*models.Scenario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sc, ok := r.s.d.scenarios[id]
	if !ok {
		return nil, repositories.ErrScenarioNotFound
	}
	return &sc, nil
}

func (r *scenarioRepo) FindByProject(projectID uint) ([]models.Scenario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var scenarios []models.Scenario
	for _, sc := range r.s.d.scenarios {
		if sc.ProjectID == projectID {
			scenarios = append(scenarios, sc)
		}
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ID < scenarios[j].ID })
	return scenarios, nil
}

func (r *scenarioRepo) Create(scenario *models.Scenario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.scenarioSeq++
	scenario.ID = r.s.d.scenarioSeq
	r.s.d.scenarios[scenario.ID] = *scenario
	return nil
}

func (r *scenarioRepo) Update(scenario *models.Scenario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.scenarios[scenario.ID]; !ok {
		return repositories.ErrScenarioNotFound
	}
	r.s.d.scenarios[scenario.ID] = *scenario
	return nil
}

func (r *scenarioRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.scenarios[id]; !ok {
		return repositories.ErrScenarioNotFound
	}
	delete(r.s.d.scenarios, id)
	return nil
}

func (r *scenarioRepo) DeleteByProject(projectID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, sc := range r.s.d.scenarios {
		if sc.ProjectID == projectID {
			delete(r.s.d.scenarios, id)
		}
	}
	return nil
}

// --- materials ---

type materialRepo struct {
	s *Store
}

func (r *materialRepo) FindByID(id uint) (*models.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.d.materials[id]
	if !ok {
		return nil, repositories.ErrMaterialNotFound
	}
	return &m, nil
}

func (r *materialRepo) FindByProject(projectID uint) ([]models.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var materials []models.Material
	for _, m := range r.s.d.materials {
		if m.ProjectID == projectID {
			materials = append(materials, m)
		}
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].ID < materials[j].ID })
	return materials, nil
}

func (r *materialRepo) Create(material *models.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.materialSeq++
	material.ID = r.s.d.materialSeq
	r.s.d.materials[material.ID] = *material
	return nil
}

func (r *materialRepo) Update(material *models.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.materials[material.ID]; !ok {
		return repositories.ErrMaterialNotFound
	}
	r.s.d.materials[material.ID] = *material
	return nil
}

func (r *materialRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.materials[id]; !ok {
		return repositories.ErrMaterialNotFound
	}
	delete(r.s.d.materials, id)
	return nil
}

func (r *materialRepo) DeleteByProject(projectID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.d.materials {
		if m.ProjectID == projectID {
			delete(r.s.d.materials, id)
		}
	}
	return nil
}

// --- publications ---

type publicationRepo struct {
	s *Store
}

func (r *publicationRepo) FindByID(id uint) (*models.Publication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.d.pubs[id]
	if !ok {
		return nil, repositories.ErrPublicationNotFound
	}
	return &p, nil
}

func (r *publicationRepo) FindByProject(projectID uint) ([]models.Publication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var pubs []models.Publication
	for _, p := range r.s.d.pubs {
		if p.ProjectID == projectID {
			pubs = append(pubs, p)
		}
	}
	sort.Slice(pubs, func(i, j int) bool { return pubs[i].ID < pubs[j].ID })
	return pubs, nil
}

func (r *publicationRepo) Create(publication *models.Publication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.pubSeq++
	publication.ID = r.s.d.pubSeq
	r.s.d.pubs[publication.ID] = *publication
	return nil
}

func (r *publicationRepo) Update(publication *models.Publication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.pubs[publication.ID]; !ok {
		return repositories.ErrPublicationNotFound
	}
	r.s.d.pubs[publication.ID] = *publication
	return nil
}

func (r *publicationRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.d.pubs[id]; !ok {
		return repositories.ErrPublicationNotFound
	}
	delete(r.s.d.pubs, id)
	return nil
}

func (r *publicationRepo) DeleteByProject(projectID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.d.pubs {
		if p.ProjectID == projectID {
			delete(r.s.d.pubs, id)
		}
	}
	return nil
}

// --- comments ---

type commentRepo struct {
	s *Store
}

func (r *commentRepo) FindByProject(projectID uint) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var comments []models.Comment
	for _, c := range r.s.d.comments {
		if c.ProjectID == projectID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (r *commentRepo) Create(comment *models.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.commentSeq++
	comment.ID = r.s.d.commentSeq
	comment.CreatedAt = nowIfZero(comment.CreatedAt)
	r.s.d.comments[comment.ID] = *comment
	return nil
}

func (r *commentRepo) DeleteByProject(projectID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, c := range r.s.d.comments {
		if c.ProjectID == projectID {
			delete(r.s.d.comments, id)
		}
	}
	return nil
}

// --- activities ---

type activityRepo struct {
	s *Store
}

func sortActivitiesNewestFirst(activities []models.Activity) {
	sort.Slice(activities, func(i, j int) bool {
		if !activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].CreatedAt.After(activities[j].CreatedAt)
		}
		return activities[i].ID > activities[j].ID
	})
}

func (r *activityRepo) FindByProject(projectID uint) ([]models.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var activities []models.Activity
	for _, a := range r.s.d.activities {
		if a.ProjectID == projectID {
			activities = append(activities, a)
		}
	}
	sortActivitiesNewestFirst(activities)
	return activities, nil
}

func (r *activityRepo) FindRecent(limit int) ([]models.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	activities := make([]models.Activity, 0, len(r.s.d.activities))
	for _, a := range r.s.d.activities {
		activities = append(activities, a)
	}
	sortActivitiesNewestFirst(activities)
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (r *activityRepo) Create(activity *models.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.d.activitySeq++
	activity.ID = r.s.d.activitySeq
	activity.CreatedAt = nowIfZero(activity.CreatedAt)
	r.s.d.activities[activity.ID] = *activity
	return nil
}

func (r *activityRepo) DeleteByProject(projectID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.d.activities {
		if a.ProjectID == projectID {
			delete(r.s.d.activities, id)
		}
	}
	return nil
}
