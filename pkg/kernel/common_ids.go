package kernel

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

type NotificationID string

func NewNotificationID(id string) NotificationID { return NotificationID(id) }
func (n NotificationID) String() string          { return string(n) }
func (n NotificationID) IsEmpty() bool           { return string(n) == "" }
