package handlers

// AppHandlers - контейнер готовых хэндлеров для регистрации маршрутов
type AppHandlers struct {
	AuthHandler    *AuthHandler
	JobHandler     *JobHandler
	UserHandler    *UserHandler
	BookingHandler *BookingHandler
}
