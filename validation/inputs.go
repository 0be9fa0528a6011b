package validation

// Input structs are the create/edit schemas for every entity. The form tag
// names the submitted field (and the key used for error display); the
// validate tag carries the rules. Edit schemas extend the create schema
// with a required identifier.

type ServiceInput struct {
	Name            string  `form:"name" validate:"required"`
	Description     string  `form:"description"`
	DurationMinutes int     `form:"duration_minutes" validate:"required,gt=0"`
	Price           float64 `form:"price" validate:"gte=0"`
	Category        string  `form:"category"`
	IsActive        bool    `form:"is_active"`
}

type ServiceEditInput struct {
	ID string `form:"id" validate:"required,uuid"`
	ServiceInput
}

type StylistInput struct {
	Name        string `form:"name" validate:"required,min=3"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone" validate:"required,phone"`
	Description string `form:"description"`
	IsActive    bool   `form:"is_active"`
}

type StylistEditInput struct {
	ID string `form:"id" validate:"required,uuid"`
	StylistInput
}

// ScheduleInput also carries a struct-level rule: start_time must be
// earlier than end_time, reported on end_time. Weekday is a pointer so an
// absent field fails required instead of decoding to Sunday.
type ScheduleInput struct {
	StylistID string `form:"stylist_id" validate:"required,uuid"`
	Weekday   *int   `form:"weekday" validate:"required,gte=0,lte=6"`
	StartTime string `form:"start_time" validate:"required,hhmm"`
	EndTime   string `form:"end_time" validate:"required,hhmm"`
}

type OfferedServiceInput struct {
	StylistID             string   `form:"stylist_id" validate:"required,uuid"`
	ServiceID             string   `form:"service_id" validate:"required,uuid"`
	CustomPrice           *float64 `form:"custom_price" validate:"omitempty,gte=0"`
	CustomDurationMinutes *int     `form:"custom_duration_minutes" validate:"omitempty,gt=0"`
	IsActive              bool     `form:"is_active"`
}

type BookingInput struct {
	Name      string `form:"name" validate:"required,min=2"`
	Phone     string `form:"phone" validate:"required,phone"`
	Email     string `form:"email" validate:"omitempty,email"`
	StylistID string `form:"stylist_id" validate:"required,uuid"`
	ServiceID string `form:"service_id" validate:"required,uuid"`
	Date      string `form:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `form:"start_time" validate:"required,hhmm"`
}

type RegisterInput struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Phone    string `form:"phone" validate:"required,phone"`
	Password string `form:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Identifier string `form:"identifier" validate:"required"`
	Password   string `form:"password" validate:"required"`
}

type SetPasswordInput struct {
	Password string `form:"password" validate:"required,min=8"`
	Confirm  string `form:"password_confirm" validate:"required,eqfield=Password"`
}
