package domain

// Group is a calendar group as listed for a member.
type Group struct {
	ID    int64  `json:"groupId"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type GroupMember struct {
	ID             string `json:"id"`
	UserName       string `json:"userName"`
	ProfileImgPath string `json:"profileImgPath,omitempty"`
}

type Tag struct {
	ID    int64  `json:"id"`
	Field string `json:"field"`
	Name  string `json:"name"`
}

// GroupDetail is the admin view of a group.
type GroupDetail struct {
	GroupID         int64         `json:"groupId"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	PrivatePassword string        `json:"privatePassword,omitempty"`
	GroupTags       []Tag         `json:"groupTags"`
	GroupMembers    []GroupMember `json:"groupMembers"`
	GroupManagers   []GroupMember `json:"groupManagers"`
	GroupNotice     string        `json:"groupNotice"`
}

type Friend struct {
	FriendID         int64  `json:"friendId"`
	FriendMemberID   string `json:"friendMemberId"`
	FriendName       string `json:"friendName"`
	ProfileImagePath string `json:"friendProfileImagePath,omitempty"`
}
