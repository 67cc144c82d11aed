package apperrors

import "net/http"

// Предопределённые доменные ошибки воркфлоу и аутентификации.

var (
	// --- Auth ---

	// ErrInvalidCredentials - неверный логин или пароль
	ErrInvalidCredentials = New(
		CodeInvalidCredentials,
		"auth",
		"Неверное имя пользователя или пароль",
		http.StatusUnauthorized,
	)

	// ErrUsernameTaken - имя пользователя уже занято
	ErrUsernameTaken = New(
		CodeConflict,
		"auth",
		"Пользователь с таким именем уже существует",
		http.StatusConflict,
	)

	// --- Projects ---

	ErrProjectNotFound = New(
		CodeNotFound,
		"project",
		"Проект не найден",
		http.StatusNotFound,
	)

	// ErrNotProjectOwner - деструктивная операция доступна только менеджеру проекта
	ErrNotProjectOwner = New(
		CodeForbidden,
		"project",
		"Операция доступна только менеджеру проекта",
		http.StatusForbidden,
	)

	// ErrInvalidWorkflowStage - этап не входит в {scenario, material, publication}
	ErrInvalidWorkflowStage = New(
		CodeValidationFailed,
		"workflow",
		"Недопустимый этап воркфлоу",
		http.StatusBadRequest,
	)

	// --- Influencers ---

	ErrInfluencerNotFound = New(
		CodeNotFound,
		"influencer",
		"Инфлюенсер не найден",
		http.StatusNotFound,
	)

	ErrInfluencerProfileNotFound = New(
		CodeNotFound,
		"influencer",
		"Профиль инфлюенсера не найден",
		http.StatusNotFound,
	)

	// ErrInfluencerAlreadyAttached - пара (проект, инфлюенсер) уже существует
	ErrInfluencerAlreadyAttached = New(
		CodeConflict,
		"workflow",
		"Инфлюенсер уже добавлен в проект",
		http.StatusConflict,
	)

	// --- Scenarios / deliverables ---

	ErrScenarioNotFound = New(
		CodeNotFound,
		"scenario",
		"Сценарий не найден",
		http.StatusNotFound,
	)

	// ErrNoInfluencersAttached - сценарий нельзя создать без привязанных инфлюенсеров
	ErrNoInfluencersAttached = New(
		CodePreconditionFailed,
		"workflow",
		"К проекту не привязан ни один инфлюенсер",
		http.StatusPreconditionFailed,
	)

	// ErrScenarioProjectMismatch - сценарий принадлежит другому проекту
	ErrScenarioProjectMismatch = New(
		CodeValidationFailed,
		"scenario",
		"Сценарий не относится к указанному проекту",
		http.StatusBadRequest,
	)

	ErrMaterialNotFound = New(
		CodeNotFound,
		"material",
		"Материал не найден",
		http.StatusNotFound,
	)

	ErrPublicationNotFound = New(
		CodeNotFound,
		"publication",
		"Публикация не найдена",
		http.StatusNotFound,
	)
)
