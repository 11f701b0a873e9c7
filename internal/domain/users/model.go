package users

// Role define los roles del sistema.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleOwner Role = "OWNER"
)

// User es una cuenta de acceso. La contraseña va en texto plano: este
// sistema es una maqueta académica sin requisitos de seguridad.
// ClientID vincula la cuenta OWNER con su ficha de cliente (0 = sin
// vínculo).
type User struct {
	ID       int64
	Email    string
	Password string
	Role     Role
	ClientID int64
}

// Session es un variant cerrado: NotAuthenticated o Authenticated(user).
type Session struct {
	Authenticated bool
	User          User
}

func NotAuthenticated() Session {
	return Session{}
}

func Authenticated(u User) Session {
	return Session{Authenticated: true, User: u}
}
