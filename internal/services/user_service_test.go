package services_test

import (
	"context"
	"testing"

	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"
	"haatbazar_admin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRegRepo - анкеты в памяти, ключ - userId
type fakeRegRepo struct {
	workers   map[primitive.ObjectID]*models.WorkerRegistration
	employers map[primitive.ObjectID]*models.EmployerRegistration
}

func newFakeRegRepo() *fakeRegRepo {
	return &fakeRegRepo{
		workers:   map[primitive.ObjectID]*models.WorkerRegistration{},
		employers: map[primitive.ObjectID]*models.EmployerRegistration{},
	}
}

func (f *fakeRegRepo) FindWorkerByUserID(_ context.Context, userID primitive.ObjectID) (*models.WorkerRegistration, error) {
	if reg, ok := f.workers[userID]; ok {
		return reg, nil
	}
	return nil, repositories.ErrRegistrationNotFound
}

func (f *fakeRegRepo) FindEmployerByUserID(_ context.Context, userID primitive.ObjectID) (*models.EmployerRegistration, error) {
	if reg, ok := f.employers[userID]; ok {
		return reg, nil
	}
	return nil, repositories.ErrRegistrationNotFound
}

func (f *fakeRegRepo) SetWorkerVerified(_ context.Context, userID primitive.ObjectID, verified bool) error {
	if reg, ok := f.workers[userID]; ok {
		reg.IsVerified = verified
	}
	return nil // отсутствие анкеты не ошибка, как в настоящем репозитории
}

func (f *fakeRegRepo) SetEmployerVerified(_ context.Context, userID primitive.ObjectID, verified bool) error {
	if reg, ok := f.employers[userID]; ok {
		reg.IsVerified = verified
	}
	return nil
}

func (f *fakeRegRepo) DeleteWorkerByUserID(_ context.Context, userID primitive.ObjectID) error {
	delete(f.workers, userID)
	return nil
}

func (f *fakeRegRepo) DeleteEmployerByUserID(_ context.Context, userID primitive.ObjectID) error {
	delete(f.employers, userID)
	return nil
}

func seedWorker(userRepo *fakeUserRepo, regRepo *fakeRegRepo, verified bool) models.User {
	user := models.User{
		ID:          primitive.NewObjectID(),
		DisplayName: "Rahim Mia",
		Email:       "rahim@test.com",
		PhoneNumber: "+8801700000001",
		UserType:    userTypePtr(models.UserTypeWorker),
		CreatedAt:   at(60),
	}
	userRepo.users = append(userRepo.users, user)
	regRepo.workers[user.ID] = &models.WorkerRegistration{
		ID:            primitive.NewObjectID(),
		UserID:        user.ID,
		Skills:        []string{"plumbing", "wiring"},
		IsVerified:    verified,
		Rating:        4.5,
		TotalJobs:     12,
		CompletedJobs: 10,
		NIDNumber:     "1990123456789",
	}
	return user
}

func seedEmployer(userRepo *fakeUserRepo, regRepo *fakeRegRepo, verified bool) models.User {
	user := models.User{
		ID:          primitive.NewObjectID(),
		DisplayName: "Salma Begum",
		UserType:    userTypePtr(models.UserTypeEmployer),
		CreatedAt:   at(30),
	}
	userRepo.users = append(userRepo.users, user)
	regRepo.employers[user.ID] = &models.EmployerRegistration{
		ID:              primitive.NewObjectID(),
		UserID:          user.ID,
		FullName:        "Salma Begum",
		Email:           "salma@company.com",
		PhoneNumber:     "+8801700000002",
		CompanyName:     "Dhaka Services Ltd",
		City:            "Gulshan",
		District:        "Dhaka",
		IsVerified:      verified,
		Rating:          4.1,
		TotalJobsPosted: 7,
		ActiveJobs:      2,
	}
	return user
}

// TestListUsers_VerifiedSlice - verified-список несет вычисляемые поля
func TestListUsers_VerifiedSlice(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{}
	regRepo := newFakeRegRepo()
	seedWorker(userRepo, regRepo, true)
	seedEmployer(userRepo, regRepo, false)

	svc := services.NewUserService(userRepo, regRepo)

	views, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, views, 1) // работодатель на модерации не попадает

	v := views[0]
	assert.Equal(t, models.UserTypeWorker, v.Type)
	assert.Equal(t, "active", v.Status)
	require.NotNil(t, v.Rating)
	assert.Equal(t, 4.5, *v.Rating)
	require.NotNil(t, v.TotalJobs)
	assert.Equal(t, 12, *v.TotalJobs)
	require.NotNil(t, v.IsVerified)
	assert.True(t, *v.IsVerified)
}

// TestListUsers_PendingSlice - pending-список отдает документы для
// проверки личности, но без рейтингов и счетчиков
func TestListUsers_PendingSlice(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{}
	regRepo := newFakeRegRepo()
	seedWorker(userRepo, regRepo, false)

	svc := services.NewUserService(userRepo, regRepo)

	views, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "pending", v.Status)
	assert.Equal(t, "1990123456789", v.NIDNumber)
	assert.Nil(t, v.Rating)
	assert.Nil(t, v.TotalJobs)
	assert.Nil(t, v.IsVerified)
}

// TestListUsers_MissingRegistrationInvisible - пользователь без анкеты
// не виден ни в verified, ни в pending
func TestListUsers_MissingRegistrationInvisible(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{users: []models.User{{
		ID:          primitive.NewObjectID(),
		DisplayName: "No Registration",
		UserType:    userTypePtr(models.UserTypeWorker),
	}}}
	regRepo := newFakeRegRepo()

	svc := services.NewUserService(userRepo, regRepo)

	verified, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, verified)

	pending, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

// TestListUsers_EmployerFallbacks - email анкеты перекрывает email
// аккаунта, локация склеивается из city/district
func TestListUsers_EmployerFallbacks(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{}
	regRepo := newFakeRegRepo()
	seedEmployer(userRepo, regRepo, true)

	svc := services.NewUserService(userRepo, regRepo)

	views, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "salma@company.com", v.Email)
	assert.Equal(t, "+8801700000002", v.Phone) // у аккаунта телефона нет
	assert.Equal(t, "Gulshan, Dhaka", v.Location)
	assert.Equal(t, "Dhaka Services Ltd", v.CompanyName)
	assert.Equal(t, v.CompanyName, v.Company)
}

// TestApproveUser - approve выставляет isVerified на анкете,
// повтор ничего не ломает
func TestApproveUser(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{}
	regRepo := newFakeRegRepo()
	user := seedWorker(userRepo, regRepo, false)

	svc := services.NewUserService(userRepo, regRepo)

	require.NoError(t, svc.Approve(context.Background(), user.ID.Hex()))
	assert.True(t, regRepo.workers[user.ID].IsVerified)

	// Идемпотентность
	require.NoError(t, svc.Approve(context.Background(), user.ID.Hex()))
	assert.True(t, regRepo.workers[user.ID].IsVerified)
}

// TestSuspendUser - suspend снимает верификацию, аккаунт остается
func TestSuspendUser(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{}
	regRepo := newFakeRegRepo()
	user := seedEmployer(userRepo, regRepo, true)

	svc := services.NewUserService(userRepo, regRepo)

	require.NoError(t, svc.Suspend(context.Background(), user.ID.Hex()))
	assert.False(t, regRepo.employers[user.ID].IsVerified)
	assert.Empty(t, userRepo.deleted)

	// Activate возвращает обратно
	require.NoError(t, svc.Activate(context.Background(), user.ID.Hex()))
	assert.True(t, regRepo.employers[user.ID].IsVerified)
}

// TestDeleteUser_Cascades - удаляется и анкета, и аккаунт
func TestDeleteUser_Cascades(t *testing.T) {
	t.Parallel()

	userRepo := &fakeUserRepo{}
	regRepo := newFakeRegRepo()
	user := seedWorker(userRepo, regRepo, true)

	svc := services.NewUserService(userRepo, regRepo)

	require.NoError(t, svc.Delete(context.Background(), user.ID.Hex()))
	assert.NotContains(t, regRepo.workers, user.ID)
	assert.Contains(t, userRepo.deleted, user.ID)
}

// TestUserOps_NotFound - операции над несуществующим пользователем
func TestUserOps_NotFound(t *testing.T) {
	t.Parallel()

	svc := services.NewUserService(&fakeUserRepo{}, newFakeRegRepo())
	missing := primitive.NewObjectID().Hex()

	assert.Error(t, svc.Approve(context.Background(), missing))
	assert.Error(t, svc.Suspend(context.Background(), missing))
	assert.Error(t, svc.Delete(context.Background(), missing))
}
