package model

type ResourceCategory string

const (
	CategoryBook    ResourceCategory = "book"
	CategoryArticle ResourceCategory = "article"
	CategoryVideo   ResourceCategory = "video"
	CategoryTool    ResourceCategory = "tool"
	CategorySite    ResourceCategory = "site"
)

func (c ResourceCategory) Valid() bool {
	switch c {
	case CategoryBook, CategoryArticle, CategoryVideo, CategoryTool, CategorySite:
		return true
	}
	return false
}

const ResourceStatusUnread = "unread"

// Resource 收藏的学习资源，独立实体，无外键
type Resource struct {
	ID       uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string           `gorm:"not null" json:"title"`
	Category ResourceCategory `gorm:"type:text" json:"category"`
	URL      string           `json:"url"`
	ImageURL string           `json:"imageUrl"`
	Status   string           `json:"status"`
}

func (Resource) TableName() string {
	return "resources"
}
