package auth

type Role struct {
	Name string `json:"name"`
}

type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type contextKey struct{ name string }

var userCtxKey = &contextKey{"user"}
