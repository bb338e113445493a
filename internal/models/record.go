package models

import "time"

// DateLayout: формат поля Date, в котором его отдаёт форма (<input type="date">).
const DateLayout = "2006-01-02"

// Record: одно зарегистрированное обращение.
type Record struct {
	ID              uint   `gorm:"primaryKey"`
	AttendantName   string `gorm:"size:50"`
	SubjectName     string `gorm:"size:50"`
	Community       string `gorm:"size:255"`
	Municipality    string `gorm:"size:255"`
	Phone           string `gorm:"size:13"`
	Email           string `gorm:"size:255"`
	ReferenceNumber string `gorm:"size:22"`
	Date            string `gorm:"size:10"`
	Reason          string `gorm:"type:text"`
}

// RecordFields: редактируемые поля записи, без суррогатного ключа.
type RecordFields struct {
	AttendantName   string `form:"attendant_name"`
	SubjectName     string `form:"subject_name"`
	Community       string `form:"community"`
	Municipality    string `form:"municipality"`
	Phone           string `form:"phone"`
	Email           string `form:"email"`
	ReferenceNumber string `form:"reference_number"`
	Date            string `form:"date"`
	Reason          string `form:"reason"`
}

func (r Record) Fields() RecordFields {
	return RecordFields{
		AttendantName:   r.AttendantName,
		SubjectName:     r.SubjectName,
		Community:       r.Community,
		Municipality:    r.Municipality,
		Phone:           r.Phone,
		Email:           r.Email,
		ReferenceNumber: r.ReferenceNumber,
		Date:            r.Date,
		Reason:          r.Reason,
	}
}

// DateEditable: пустую или YYYY-MM-DD дату можно показать в <input type="date">,
// иначе браузер покажет пустое поле и при сохранении дата потеряется.
func (f RecordFields) DateEditable() bool {
	if f.Date == "" {
		return true
	}
	_, err := time.Parse(DateLayout, f.Date)
	return err == nil
}

// Apply перезаписывает все редактируемые поля записи.
func (r *Record) Apply(f RecordFields) {
	r.AttendantName = f.AttendantName
	r.SubjectName = f.SubjectName
	r.Community = f.Community
	r.Municipality = f.Municipality
	r.Phone = f.Phone
	r.Email = f.Email
	r.ReferenceNumber = f.ReferenceNumber
	r.Date = f.Date
	r.Reason = f.Reason
}
