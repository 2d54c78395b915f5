package message

const (
	InvalidCreds  = "Invalid email/password."
	InvalidInput  = "Invalid input."
	OrderNotFound = "Order not found."
	DishNotFound  = "Dish not found."
	InvalidStatus = "Status not allowed."
	StaffExists   = "A staff account with that email already exists."
	EnvErrFmt     = "environment variable is not set: %s"
)
