package models

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	UserID        string   `bson:"user_id" json:"userId"`
	Name          string   `bson:"name" json:"name"`
	Email         string   `bson:"email" json:"email"`
	RemindersSent int      `bson:"reminders_sent" json:"remindersSent"`
	IsBanned      bool     `bson:"is_banned" json:"isBanned"`
	Role          UserRole `bson:"role" json:"role"`
}

// PublicUser is the restricted view returned by the user listing endpoint.
type PublicUser struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	RemindersSent int    `json:"remindersSent"`
	IsBanned      bool   `json:"isBanned"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		RemindersSent: u.RemindersSent,
		IsBanned:      u.IsBanned,
	}
}
