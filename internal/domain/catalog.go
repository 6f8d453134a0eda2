package domain

// Role represents the role of a profile
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBarber   Role = "barber"
	RoleAdmin    Role = "admin"
)

// IsStaff returns true if the role grants access to the admin panel
func (r Role) IsStaff() bool {
	return r == RoleBarber || r == RoleAdmin
}

// IsValid returns true for a known role
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleBarber || r == RoleAdmin
}

// Unit represents a physical barbershop location
// Справочные данные - загружаются один раз и не изменяются сервисом
type Unit struct {
	ID        int64
	Name      string
	Address   string
	City      string
	PhotoPath string // путь в бакете object storage, может быть пустым
}

// Service represents a bookable service (corte, barba, ...)
// Связана с Unit через таблицу unit_services (many-to-many)
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	PriceCents      int64
}

// Barber represents a barber linked to a profile
// Связан с Unit через таблицу barber_units (many-to-many)
type Barber struct {
	ID         int64
	ProfileID  string // uuid профиля из auth-бэкенда
	Name       string // full_name из связанного профиля
	Bio        string
	AvatarPath string
}

// Profile represents the application profile of an auth identity
type Profile struct {
	ID       string // uuid, совпадает с идентификатором в auth-бэкенде
	FullName string
	Phone    string
	Role     Role
}
