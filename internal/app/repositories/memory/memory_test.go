package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qasyoun/qasyounextra/internal/app/models"
	"github.com/qasyoun/qasyounextra/internal/app/repositories"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	repo := New(opts...)
	t.Cleanup(repo.Close)
	return repo
}

func int64Ptr(v int64) *int64 { return &v }

func TestNewSeedsAdminAndCategories(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	admin, err := repo.GetUserByUsername(ctx, DefaultAdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, int64(1), admin.ID)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Nil(t, admin.ProfilePicture, "empty optional text resolves to nil")
	assert.Nil(t, admin.Experience)
	assert.NotEqual(t, DefaultAdminPassword, admin.Password, "password is stored hashed")

	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, len(DefaultCategories))
	for i, c := range categories {
		assert.Equal(t, int64(i+1), c.ID)
		assert.Equal(t, DefaultCategories[i].Name, c.Name)
	}
}

func TestWithoutDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults())

	users, err := repo.GetTeachers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestCreateThenGetReturnsDefaultedRecord(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults())

	t.Run("user", func(t *testing.T) {
		created, err := repo.CreateUser(ctx, models.UserInput{
			Username: "lina", Email: "lina@example.com", Password: "x", FullName: "Lina",
		})
		require.NoError(t, err)

		got, err := repo.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.Equal(t, models.RoleStudent, got.Role)
		assert.Nil(t, got.Bio)
		assert.Nil(t, got.UniversityID)
		assert.Nil(t, got.Faculty)
		assert.NotEqual(t, uuid.Nil, got.UUID)
		assert.Equal(t, fixedNow, got.CreatedAt)
	})

	t.Run("course", func(t *testing.T) {
		created, err := repo.CreateCourse(ctx, models.CourseInput{
			Title: "Algebra", Description: "Intro", Price: 1500, Level: "beginner",
		})
		require.NoError(t, err)

		got, err := repo.GetCourseByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.False(t, got.IsOfficial)
		assert.Nil(t, got.Thumbnail)
		assert.Nil(t, got.CategoryID)
		assert.Nil(t, got.TeacherID)
		assert.Equal(t, fixedNow, got.CreatedAt)
	})

	t.Run("university", func(t *testing.T) {
		created, err := repo.CreateUniversity(ctx, models.UniversityInput{Name: "Damascus University", Location: "Damascus"})
		require.NoError(t, err)

		got, err := repo.GetUniversity(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.Nil(t, got.Logo)
		assert.Nil(t, got.Website)
	})

	t.Run("enrollment", func(t *testing.T) {
		created, err := repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: 7, CourseID: 9})
		require.NoError(t, err)
		assert.False(t, created.IsCompleted)
		assert.Equal(t, fixedNow, created.EnrolledAt)
	})

	t.Run("message", func(t *testing.T) {
		created, err := repo.CreateMessage(ctx, models.MessageInput{SenderID: 1, ReceiverID: 2, Content: "hi"})
		require.NoError(t, err)
		assert.False(t, created.IsRead)
		assert.Equal(t, fixedNow, created.SentAt)
	})

	t.Run("review", func(t *testing.T) {
		created, err := repo.CreateReview(ctx, models.ReviewInput{CourseID: 9, StudentID: 7, Rating: 4, Comment: new(string)})
		require.NoError(t, err)
		assert.Nil(t, created.Comment)
		assert.Equal(t, fixedNow, created.CreatedAt)
	})
}

func TestIDsIncreasePerEntity(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults())

	var last int64
	for i := 0; i < 5; i++ {
		m, err := repo.CreateMaterial(ctx, models.MaterialInput{CourseID: 1, Title: "m", Type: models.MaterialTypePDF, URL: "u"})
		require.NoError(t, err)
		assert.Greater(t, m.ID, last)
		last = m.ID
	}

	// each family has its own counter
	r, err := repo.CreateReview(ctx, models.ReviewInput{CourseID: 1, StudentID: 1, Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.ID)
}

func TestGetMissingIsAbsentNotError(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	u, err := repo.GetUser(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, u)

	c, err := repo.GetCourseByID(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, c)

	cat, err := repo.GetCategoryByID(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, cat)

	uni, err := repo.GetUniversity(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, uni)

	updated, err := repo.UpdateUser(ctx, 999, models.UserUpdate{Email: "x@example.com"})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestLookupsAreCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	u, err := repo.GetUserByUsername(ctx, "Admin")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.GetUserByEmail(ctx, "ADMIN@qasyounextra.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestDuplicateUsersAcceptedWithoutUniqueness(t *testing.T) {
	// known divergence: the postgres backend rejects these
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults())
	assert.False(t, repo.Capabilities().EnforcesUniqueness)

	in := models.UserInput{Username: "sam", Email: "sam@example.com", Password: "x", FullName: "Sam"}
	first, err := repo.CreateUser(ctx, in)
	require.NoError(t, err)
	second, err := repo.CreateUser(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	e1, err := repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: first.ID, CourseID: 1})
	require.NoError(t, err)
	e2, err := repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: first.ID, CourseID: 1})
	require.NoError(t, err)
	assert.NotEqual(t, e1.ID, e2.ID)
}

func TestWithUniquenessRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults(), WithUniqueness())
	assert.True(t, repo.Capabilities().EnforcesUniqueness)

	_, err := repo.CreateUser(ctx, models.UserInput{Username: "sam", Email: "sam@example.com", FullName: "Sam"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		in         models.UserInput
		constraint string
	}{
		{"same username", models.UserInput{Username: "sam", Email: "other@example.com"}, repositories.ConstraintUsername},
		{"same email", models.UserInput{Username: "other", Email: "sam@example.com"}, repositories.ConstraintEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateUser(ctx, tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, repositories.ErrUniqueViolation))
			var uv *repositories.UniqueViolationError
			require.ErrorAs(t, err, &uv)
			assert.Equal(t, tt.constraint, uv.Constraint)
		})
	}

	_, err = repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: 1, CourseID: 1})
	require.NoError(t, err)
	_, err = repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: 1, CourseID: 1})
	assert.ErrorIs(t, err, repositories.ErrUniqueViolation)
	_, err = repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: 1, CourseID: 2})
	assert.NoError(t, err)
}

func TestUniquenessReportsEarliestConflictingUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults(), WithUniqueness())

	_, err := repo.CreateUser(ctx, models.UserInput{Username: "sam", Email: "sam@example.com"})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, models.UserInput{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	// username collides with bob, email with sam; sam was created first
	in := models.UserInput{Username: "bob", Email: "sam@example.com"}
	for i := 0; i < 20; i++ {
		_, err := repo.CreateUser(ctx, in)
		var uv *repositories.UniqueViolationError
		require.ErrorAs(t, err, &uv)
		assert.Equal(t, repositories.ConstraintEmail, uv.Constraint)
	}
}

func TestReturnedRecordsDoNotAliasStoredRows(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults())

	bio := "original"
	created, err := repo.CreateUser(ctx, models.UserInput{
		Username: "lina", Email: "lina@example.com", FullName: "Lina",
		Bio: &bio, UniversityID: int64Ptr(4),
	})
	require.NoError(t, err)
	*created.Bio = "changed on create result"

	got, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	*got.Bio = "changed on get result"
	*got.UniversityID = 99

	byName, err := repo.GetUserByUsername(ctx, "lina")
	require.NoError(t, err)
	*byName.Bio = "changed on find result"

	again, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, again.Bio)
	assert.Equal(t, "original", *again.Bio)
	assert.Equal(t, int64(4), *again.UniversityID)

	thumb := "cover.png"
	course, err := repo.CreateCourse(ctx, models.CourseInput{
		Title: "Go", Description: "d", Level: "beginner",
		Thumbnail: &thumb, CategoryID: int64Ptr(1), TeacherID: int64Ptr(created.ID),
	})
	require.NoError(t, err)
	listed, err := repo.GetCoursesByCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	*listed[0].Thumbnail = "other.png"
	*listed[0].CategoryID = 2

	stored, err := repo.GetCourseByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "cover.png", *stored.Thumbnail)
	assert.Equal(t, int64(1), *stored.CategoryID)

	comment := "great"
	_, err = repo.CreateReview(ctx, models.ReviewInput{CourseID: course.ID, StudentID: created.ID, Rating: 5, Comment: &comment})
	require.NoError(t, err)
	reviews, err := repo.GetReviewsByCourse(ctx, course.ID)
	require.NoError(t, err)
	*reviews[0].Comment = "bad"
	reviews, err = repo.GetReviewsByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "great", *reviews[0].Comment)
}

func TestUpdateUserReplacesMutableFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults(), WithUniqueness())

	bio := "teaches calculus"
	u, err := repo.CreateUser(ctx, models.UserInput{Username: "t", Email: "t@example.com", FullName: "T", Bio: &bio})
	require.NoError(t, err)
	other, err := repo.CreateUser(ctx, models.UserInput{Username: "o", Email: "o@example.com", FullName: "O"})
	require.NoError(t, err)

	upd := models.UpdateFromUser(u)
	upd.Role = models.RoleTeacher
	upd.Bio = nil
	upd.UniversityID = int64Ptr(3)
	updated, err := repo.UpdateUser(ctx, u.ID, upd)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, u.Username, updated.Username)
	assert.Equal(t, u.UUID, updated.UUID)
	assert.Equal(t, u.CreatedAt, updated.CreatedAt)
	assert.Equal(t, models.RoleTeacher, updated.Role)
	assert.Nil(t, updated.Bio)
	assert.Equal(t, int64(3), *updated.UniversityID)

	upd = models.UpdateFromUser(other)
	upd.Email = "t@example.com"
	_, err = repo.UpdateUser(ctx, other.ID, upd)
	assert.ErrorIs(t, err, repositories.ErrUniqueViolation)

	// keeping one's own email is not a conflict
	_, err = repo.UpdateUser(ctx, u.ID, models.UpdateFromUser(updated))
	assert.NoError(t, err)
}

func TestMarkMessageAsRead(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("missing id is a no-op", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.NoError(t, repo.MarkMessageAsRead(ctx, 42))
		}
		msgs, err := repo.GetMessagesByUser(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("flips once and stays true", func(t *testing.T) {
		m, err := repo.CreateMessage(ctx, models.MessageInput{SenderID: 1, ReceiverID: 2, Content: "hello"})
		require.NoError(t, err)
		require.False(t, m.IsRead)

		for i := 0; i < 2; i++ {
			require.NoError(t, repo.MarkMessageAsRead(ctx, m.ID))
			msgs, err := repo.GetMessagesByUser(ctx, 2)
			require.NoError(t, err)
			require.Len(t, msgs, 1)
			assert.True(t, msgs[0].IsRead)
		}
		assert.False(t, m.IsRead, "returned copies are detached from storage")
	})
}

func TestGetMessagesByUserSentThenReceived(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults())

	in1, _ := repo.CreateMessage(ctx, models.MessageInput{SenderID: 2, ReceiverID: 1, Content: "a"})
	out1, _ := repo.CreateMessage(ctx, models.MessageInput{SenderID: 1, ReceiverID: 2, Content: "b"})
	_, _ = repo.CreateMessage(ctx, models.MessageInput{SenderID: 2, ReceiverID: 3, Content: "c"})
	in2, _ := repo.CreateMessage(ctx, models.MessageInput{SenderID: 3, ReceiverID: 1, Content: "d"})
	out2, _ := repo.CreateMessage(ctx, models.MessageInput{SenderID: 1, ReceiverID: 3, Content: "e"})
	self, _ := repo.CreateMessage(ctx, models.MessageInput{SenderID: 1, ReceiverID: 1, Content: "f"})

	msgs, err := repo.GetMessagesByUser(ctx, 1)
	require.NoError(t, err)

	var ids []int64
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{out1.ID, out2.ID, self.ID, in1.ID, in2.ID}, ids)
}

func TestGetTeachersInCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	var want []int64
	for i, role := range []models.Role{models.RoleTeacher, models.RoleStudent, models.RoleTeacher, ""} {
		u, err := repo.CreateUser(ctx, models.UserInput{
			Username: string(rune('a' + i)), Email: string(rune('a'+i)) + "@example.com", Role: role,
		})
		require.NoError(t, err)
		if role == models.RoleTeacher {
			want = append(want, u.ID)
		}
	}

	teachers, err := repo.GetTeachers(ctx)
	require.NoError(t, err)
	var got []int64
	for _, u := range teachers {
		assert.Equal(t, models.RoleTeacher, u.Role)
		got = append(got, u.ID)
	}
	assert.Equal(t, want, got)
}

func TestCoursesByCategoryScenario(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cat, err := repo.CreateCategory(ctx, models.CategoryInput{Name: "Math", Icon: "calculator", Color: "#000"})
	require.NoError(t, err)
	_, err = repo.CreateCourse(ctx, models.CourseInput{Title: "Other", Description: "d", Level: "x", CategoryID: int64Ptr(1)})
	require.NoError(t, err)
	course, err := repo.CreateCourse(ctx, models.CourseInput{
		Title: "Calculus", Description: "d", Level: "x", CategoryID: &cat.ID, TeacherID: int64Ptr(5), UniversityID: int64Ptr(2),
	})
	require.NoError(t, err)

	courses, err := repo.GetCoursesByCategory(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, course.ID, courses[0].ID)

	byTeacher, err := repo.GetCoursesByTeacher(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, byTeacher, 1)

	byUniversity, err := repo.GetCoursesByUniversity(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byUniversity, 1)
}

func TestEnrollmentsByCourseAndStudent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	a, err := repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: 10, CourseID: 3})
	require.NoError(t, err)
	b, err := repo.CreateEnrollment(ctx, models.EnrollmentInput{StudentID: 11, CourseID: 3})
	require.NoError(t, err)

	byCourse, err := repo.GetEnrollmentsByCourse(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byCourse, 2)
	assert.Equal(t, a.ID, byCourse[0].ID)
	assert.Equal(t, b.ID, byCourse[1].ID)

	byStudent, err := repo.GetEnrollmentsByStudent(ctx, 11)
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	assert.Equal(t, b.ID, byStudent[0].ID)
}

func TestReviewsAndMaterialsByCourse(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.CreateReview(ctx, models.ReviewInput{CourseID: 1, StudentID: 2, Rating: 5})
	require.NoError(t, err)
	_, err = repo.CreateReview(ctx, models.ReviewInput{CourseID: 2, StudentID: 2, Rating: 3})
	require.NoError(t, err)
	_, err = repo.CreateMaterial(ctx, models.MaterialInput{CourseID: 1, Title: "Intro", Type: models.MaterialTypeVideo, URL: "https://v"})
	require.NoError(t, err)

	reviews, err := repo.GetReviewsByCourse(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	materials, err := repo.GetMaterialsByCourse(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, materials, 1)

	materials, err = repo.GetMaterialsByCourse(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, materials)
}

func TestConcurrentCreatesAssignDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, WithoutDefaults())

	const workers = 50
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.CreateCategory(ctx, models.CategoryInput{Name: "c", Icon: "i", Color: "#fff"})
			if err == nil {
				ids <- c.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}
