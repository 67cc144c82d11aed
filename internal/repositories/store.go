package repositories

// Store объединяет репозитории сущностей за одной транзакционной границей.
// Многошаговые мутации воркфлоу (статус + запись активности, каскадное
// удаление) выполняются целиком внутри Transaction.
type Store interface {
	Users() UserRepository
	Influencers() InfluencerRepository
	Projects() ProjectRepository
	ProjectInfluencers() ProjectInfluencerRepository
	Scenarios() ScenarioRepository
	Materials() MaterialRepository
	Publications() PublicationRepository
	Comments() CommentRepository
	Activities() ActivityRepository

	// Transaction выполняет fn атомарно: все или ничего
	Transaction(fn func(Store) error) error
}
