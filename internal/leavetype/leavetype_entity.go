package leavetype

type LeaveType struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);not null"`
	Description string `gorm:"type:varchar(200)"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}
