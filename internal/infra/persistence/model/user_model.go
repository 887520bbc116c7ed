package model

// UserModel mirrors the 'users' table. The table exists in the schema but
// no storefront flow reads it; authentication is out of scope.
type UserModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"type:varchar(255);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EmployeeModel mirrors the 'employees' table, kept for schema parity with
// the back-office tooling.
type EmployeeModel struct {
	EmployeeID int64  `gorm:"primaryKey;autoIncrement"`
	FullName   string `gorm:"type:varchar(255);not null"`
	Email      string `gorm:"type:varchar(255);unique"`
	Contact    string `gorm:"type:varchar(13);not null"`
	Position   string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
