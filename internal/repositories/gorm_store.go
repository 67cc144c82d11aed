package repositories

import (
	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

// gormStore - реализация Store поверх gorm
type gormStore struct {
	db *gorm.DB
}

// NewGormStore создает Store поверх подключения gorm
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// AutoMigrate применяет схему всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Influencer{},
		&models.Project{},
		&models.ProjectInfluencer{},
		&models.Scenario{},
		&models.Material{},
		&models.Publication{},
		&models.Comment{},
		&models.Activity{},
	)
}

func (s *gormStore) Users() UserRepository {
	return &userRepository{db: s.db}
}

func (s *gormStore) Influencers() InfluencerRepository {
	return &influencerRepository{db: s.db}
}

func (s *gormStore) Projects() ProjectRepository {
	return &projectRepository{db: s.db}
}

func (s *gormStore) ProjectInfluencers() ProjectInfluencerRepository {
	return &projectInfluencerRepository{db: s.db}
}

func (s *gormStore) Scenarios() ScenarioRepository {
	return &scenarioRepository{db: s.db}
}

func (s *gormStore) Materials() MaterialRepository {
	return &materialRepository{db: s.db}
}

func (s *gormStore) Publications() PublicationRepository {
	return &publicationRepository{db: s.db}
}

func (s *gormStore) Comments() CommentRepository {
	return &commentRepository{db: s.db}
}

func (s *gormStore) Activities() ActivityRepository {
	return &activityRepository{db: s.db}
}

// Transaction выполняет fn в транзакции БД, откат при любой ошибке
func (s *gormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
