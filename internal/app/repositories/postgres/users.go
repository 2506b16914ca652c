package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/qasyoun/qasyounextra/internal/app/models"
)

var userColumns = []string{
	"id", "uuid", "username", "email", "password", "role", "full_name",
	"profile_picture", "bio", "experience", "university_id", "faculty",
	"academic_year", "student_id", "created_at",
}

func scanUser(row scanner) (*models.User, error) {
	var (
		u                     models.User
		role                  string
		faculty, academicYear *string
	)
	err := row.Scan(
		&u.ID, &u.UUID, &u.Username, &u.Email, &u.Password, &role, &u.FullName,
		&u.ProfilePicture, &u.Bio, &u.Experience, &u.UniversityID, &faculty,
		&academicYear, &u.StudentID, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	u.Faculty = enumPtr[models.Faculty](faculty)
	u.AcademicYear = enumPtr[models.AcademicYear](academicYear)
	return &u, nil
}

func (r *Repository) selectUsers() squirrel.SelectBuilder {
	return r.sb.Select(userColumns...).From("users")
}

// GetUser returns the user with id, or nil.
func (r *Repository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return getOne(ctx, r, r.selectUsers().Where(squirrel.Eq{"id": id}).Limit(1), scanUser)
}

// GetUserByUsername is a case-sensitive exact match.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return getOne(ctx, r, r.selectUsers().Where(squirrel.Eq{"username": username}).Limit(1), scanUser)
}

// GetUserByEmail is a case-sensitive exact match.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return getOne(ctx, r, r.selectUsers().Where(squirrel.Eq{"email": email}).Limit(1), scanUser)
}

func (r *Repository) GetTeachers(ctx context.Context) ([]*models.User, error) {
	q := r.selectUsers().Where(squirrel.Eq{"role": string(models.RoleTeacher)}).OrderBy("id ASC")
	return getMany(ctx, r, q, scanUser)
}

// CreateUser inserts a user. uuid and created_at come from column defaults.
// Duplicate usernames or emails fail with a unique_violation from the server.
func (r *Repository) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	u := models.NewUserRecord(0, in, timeZero)
	q := r.sb.Insert("users").
		Columns("username", "email", "password", "role", "full_name", "profile_picture", "bio",
			"experience", "university_id", "faculty", "academic_year", "student_id").
		Values(u.Username, u.Email, u.Password, string(u.Role), u.FullName, u.ProfilePicture, u.Bio,
			u.Experience, u.UniversityID, enumArg(u.Faculty), enumArg(u.AcademicYear), u.StudentID).
		Suffix("RETURNING " + joinColumns(userColumns))
	return insertOne(ctx, r, q, scanUser)
}

// UpdateUser replaces the mutable columns of user id. Unknown ids yield nil.
func (r *Repository) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	u := upd.Apply(&models.User{})
	q := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"email":           u.Email,
			"password":        u.Password,
			"role":            string(u.Role),
			"full_name":       u.FullName,
			"profile_picture": u.ProfilePicture,
			"bio":             u.Bio,
			"experience":      u.Experience,
			"university_id":   u.UniversityID,
			"faculty":         enumArg(u.Faculty),
			"academic_year":   enumArg(u.AcademicYear),
			"student_id":      u.StudentID,
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(userColumns))
	return getOne(ctx, r, q, scanUser)
}
