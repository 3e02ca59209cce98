package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push notification topics
const (
	TopicPromotions = "promotions"
	TopicNewOrders  = "new-orders"
)

// Auth cookies
const (
	UserAuthCookie  = "rememberMeToken"
	AdminAuthCookie = "adminRememberMeToken"
)
