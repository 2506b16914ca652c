package models

// Category defines the model based on the 'categories' table
type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Icon        string  `json:"icon" db:"icon"`
	Color       string  `json:"color" db:"color"`
}

// CategoryInput holds the caller-supplied fields of a new category.
type CategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Icon        string  `json:"icon" binding:"required"`
	Color       string  `json:"color" binding:"required"`
}

// NewCategoryRecord builds the stored category row. Categories carry no timestamp.
func NewCategoryRecord(id int64, in CategoryInput) *Category {
	return &Category{
		ID:          id,
		Name:        in.Name,
		Description: optionalText(in.Description),
		Icon:        in.Icon,
		Color:       in.Color,
	}
}

func (c *Category) Clone() *Category {
	out := *c
	out.Description = clonePtr(c.Description)
	return &out
}
