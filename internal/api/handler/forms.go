package handler

type registerForm struct {
	FirstName       string `form:"first_name"       validate:"required,max=50"`
	LastName        string `form:"last_name"        validate:"required,max=50"`
	Username        string `form:"username"         validate:"required,max=50"`
	Email           string `form:"email"            validate:"required,email,max=100"`
	Password        string `form:"password"         validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
}

// loginForm is not validated: any failure reads as invalid credentials.
type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type profileForm struct {
	FirstName string `form:"first_name" validate:"required,max=50"`
	LastName  string `form:"last_name"  validate:"required,max=50"`
	Username  string `form:"username"   validate:"required,max=50"`
	Email     string `form:"email"      validate:"required,email,max=100"`
	Password  string `form:"password"`
}

// uploadForm carries the text fields; the file comes from the "file" part.
type uploadForm struct {
	Title       string `form:"title"       validate:"required,max=200"`
	Description string `form:"description" validate:"required,max=500"`
	Category    string `form:"category"    validate:"required,category"`
}

// modifyForm leaves blank title and description untouched.
type modifyForm struct {
	Title       string `form:"title"       validate:"omitempty,max=200"`
	Description string `form:"description" validate:"omitempty,max=500"`
	Category    string `form:"category"    validate:"required,category"`
}

type exploreQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

type chatForm struct {
	Message string `form:"message" validate:"max=500"`
}
