package contextkeys

// Custom type to avoid key collisions between packages.
type contextKey string

// DBContextKey stores the *gorm.DB handle in a request context.
const DBContextKey = contextKey("db")
