package accounthandler

type RegisterBody struct {
	Username string `json:"username" binding:"required,max=150" example:"alice"`
	Email    string `json:"email"    binding:"omitempty,email"  example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8"   example:"s3cret-pass"`
} // @name RegisterRequest

type LoginBody struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
} // @name LoginRequest

type RefreshBody struct {
	Refresh string `json:"refresh" binding:"required"`
} // @name RefreshRequest
