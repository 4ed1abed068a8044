package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ConnectionHandler   *ConnectionHandler
	FeedHandler         *FeedHandler
	NotificationHandler *NotificationHandler
}
