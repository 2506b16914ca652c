package memory

import (
	"sync"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/pkg/auth"
)

// Default administrator created with every in-memory repository.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@qasyounextra.com"
	DefaultAdminPassword = "adminpassword"
)

// DefaultCategories are created with every in-memory repository, in this order.
var DefaultCategories = []models.CategoryInput{
	{Name: "Mathematics", Description: strPtr("Mathematics lessons"), Icon: "calculator", Color: "#5E17EB"},
	{Name: "Science", Description: strPtr("Science lessons"), Icon: "flask", Color: "#FF8A00"},
	{Name: "Arabic Language", Description: strPtr("Arabic language lessons"), Icon: "language", Color: "#8C52FF"},
	{Name: "English Language", Description: strPtr("English language lessons"), Icon: "globe", Color: "#4CAF50"},
	{Name: "History", Description: strPtr("History lessons"), Icon: "landmark", Color: "#FFC107"},
	{Name: "Physics", Description: strPtr("Physics lessons"), Icon: "atom", Color: "#F44336"},
}

var (
	adminHashOnce sync.Once
	adminHash     string
)

// defaultAdminHash hashes DefaultAdminPassword once per process.
func defaultAdminHash() string {
	adminHashOnce.Do(func() {
		h, err := auth.HashPassword(DefaultAdminPassword)
		if err != nil {
			// bcrypt only fails on passwords over 72 bytes
			panic(err)
		}
		adminHash = h
	})
	return adminHash
}

// seedDefaults runs synchronously inside New, before the repository is shared.
func (r *Repository) seedDefaults() {
	r.mu.Lock()
	defer r.mu.Unlock()

	admin := models.NewUserRecord(r.users.nextID(), models.UserInput{
		Username:       DefaultAdminUsername,
		Email:          DefaultAdminEmail,
		Password:       defaultAdminHash(),
		Role:           models.RoleAdmin,
		FullName:       "System Administrator",
		ProfilePicture: strPtr(""),
		Bio:            strPtr("Qasyoun Extra platform administrator"),
		Experience:     strPtr(""),
	}, r.now())
	r.users.insert(admin.ID, admin)

	for _, in := range DefaultCategories {
		r.createCategoryLocked(in)
	}
}

func strPtr(s string) *string { return &s }
