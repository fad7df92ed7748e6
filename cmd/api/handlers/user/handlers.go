package handlers

type RegisterParam struct {
	UserName string `form:"user_name" json:"user_name"`
	FullName string `form:"full_name" json:"full_name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type LoginParam struct {
	UserName string `form:"user_name" json:"user_name"`
	Password string `form:"password" json:"password"`
}

type UpdateUserParam struct {
	FullName string `form:"full_name" json:"full_name"`
	Email    string `form:"email" json:"email"`
}

type ChangePasswordParam struct {
	OldPassword string `form:"old_password" json:"old_password"`
	NewPassword string `form:"new_password" json:"new_password"`
}
