package services

import (
	"context"
	"sort"
	"strings"

	"haatbazar_admin/internal/logger"
	"haatbazar_admin/internal/models"
	"haatbazar_admin/internal/repositories"
	"haatbazar_admin/internal/services/dto"
	"haatbazar_admin/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type JobService interface {
	// ListByApproval собирает вакансии из трех коллекций-источников
	// в единую нормализованную ленту, отфильтрованную по флагу модерации
	ListByApproval(ctx context.Context, approved bool) ([]dto.JobView, error)
	// ListAllGeneric возвращает все вакансии общего вида без фильтра
	ListAllGeneric(ctx context.Context) ([]dto.JobView, error)
	Create(ctx context.Context, posterID string, req *dto.CreateJobRequest) (*models.Job, error)
	Approve(ctx context.Context, id string, collection string) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string, collection string) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

func (s *JobServiceImpl) ListByApproval(ctx context.Context, approved bool) ([]dto.JobView, error) {
	var (
		jobs           []models.Job
		workerOffers   []models.WorkerJobOffer
		employerOffers []models.EmployerJobOffer
	)

	// Три первичных чтения идут параллельно; ошибка любого из них
	// фатальна для всего запроса
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobRepo.FindGenericByApproval(gctx, approved)
		return err
	})
	g.Go(func() error {
		var err error
		workerOffers, err = s.jobRepo.FindWorkerOffersByApproval(gctx, approved)
		return err
	})
	g.Go(func() error {
		var err error
		employerOffers, err = s.jobRepo.FindEmployerOffersByApproval(gctx, approved)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	views := make([]dto.JobView, 0, len(jobs)+len(workerOffers)+len(employerOffers))
	views = append(views, s.normalizeGenericJobs(ctx, jobs)...)
	views = append(views, s.normalizeWorkerOffers(ctx, workerOffers)...)
	views = append(views, s.normalizeEmployerOffers(ctx, employerOffers)...)

	// Общая пересортировка после склейки групп; при равных датах
	// сохраняется входной порядок
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})

	return views, nil
}

func (s *JobServiceImpl) ListAllGeneric(ctx context.Context) ([]dto.JobView, error) {
	jobs, err := s.jobRepo.FindAllGeneric(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.normalizeGenericJobs(ctx, jobs), nil
}

// normalizeGenericJobs приводит вакансии общего вида к JobView.
// Автор подтягивается по store-нативной ссылке postedBy; lookup'ы
// внутри группы идут параллельно, провал одного из них деградирует
// до postedBy=null и не валит остальную выборку.
func (s *JobServiceImpl) normalizeGenericJobs(ctx context.Context, jobs []models.Job) []dto.JobView {
	views := make([]dto.JobView, len(jobs))

	var g errgroup.Group
	for i := range jobs {
		i := i
		g.Go(func() error {
			job := jobs[i]

			var poster *dto.JobPoster
			user, err := s.userRepo.FindByID(ctx, job.PostedBy.Hex())
			if err != nil {
				if !apperrors.Is(err, repositories.ErrUserNotFound) {
					logger.CtxWithError(ctx, "poster lookup failed, returning job without poster info", err,
						"job_id", job.ID.Hex())
				}
			} else {
				poster = &dto.JobPoster{
					ID:    user.ID,
					Name:  user.DisplayName,
					Email: user.Email,
					Type:  models.UserType(derefType(user.UserType)),
				}
			}

			views[i] = dto.JobView{
				ID:          job.ID,
				Title:       job.Title,
				Description: job.Description,
				Type:        job.Type,
				Status:      string(job.Status),
				Urgent:      job.Urgent,
				Location:    job.Location,
				Budget:      job.Budget,
				CreatedAt:   job.CreatedAt,
				IsApproved:  job.IsApproved,
				PostedBy:    poster,
				Collection:  repositories.CollectionJobs,
			}
			return nil
		})
	}
	g.Wait() // замыкания не возвращают ошибок

	return views
}

func (s *JobServiceImpl) normalizeWorkerOffers(ctx context.Context, offers []models.WorkerJobOffer) []dto.JobView {
	views := make([]dto.JobView, len(offers))

	var g errgroup.Group
	for i := range offers {
		i := i
		g.Go(func() error {
			offer := offers[i]

			views[i] = dto.JobView{
				ID:          offer.ID,
				Title:       offer.Title,
				Description: offer.Description,
				Type:        models.UserTypeWorker,
				Status:      offer.Status,
				Urgent:      false, // у worker-офферов нет признака срочности
				Location:    formatLocation(offer.Area, offer.District),
				Budget:      parseBudget(offer.ExpectedSalary),
				Skills:      offer.Skills,
				CreatedAt:   offer.CreatedAt,
				IsApproved:  offer.IsApproved,
				PostedBy:    s.lookupPosterByUID(ctx, offer.FirebaseUID, models.UserTypeWorker),
				Collection:  repositories.CollectionWorkerOffers,
			}
			return nil
		})
	}
	g.Wait()

	return views
}

func (s *JobServiceImpl) normalizeEmployerOffers(ctx context.Context, offers []models.EmployerJobOffer) []dto.JobView {
	views := make([]dto.JobView, len(offers))

	var g errgroup.Group
	for i := range offers {
		i := i
		g.Go(func() error {
			offer := offers[i]

			applicants := offer.Applicants
			if applicants == nil {
				applicants = []string{}
			}

			views[i] = dto.JobView{
				ID:          offer.ID,
				Title:       offer.Title,
				Description: offer.Description,
				Type:        models.UserTypeEmployer,
				Status:      offer.Status,
				Urgent:      offer.MarkedUrgent,
				Location:    formatLocation(offer.Area, offer.District),
				Budget:      parseBudget(offer.Budget),
				Skills:      offer.RequiredSkills,
				Applicants:  applicants,
				CreatedAt:   offer.CreatedAt,
				IsApproved:  offer.IsApproved,
				PostedBy:    s.lookupPosterByUID(ctx, offer.FirebaseUID, models.UserTypeEmployer),
				Collection:  repositories.CollectionEmployerOffers,
			}
			return nil
		})
	}
	g.Wait()

	return views
}

// lookupPosterByUID - вторичный поиск автора оффера по внешнему
// идентификатору (N+1; на текущих объемах приемлемо). Любой провал
// деградирует до nil.
func (s *JobServiceImpl) lookupPosterByUID(ctx context.Context, firebaseUID string, userType models.UserType) *dto.JobPoster {
	if firebaseUID == "" {
		return nil
	}

	user, err := s.userRepo.FindByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxWithError(ctx, "poster lookup by firebase uid failed", err, "firebase_uid", firebaseUID)
		}
		return nil
	}

	return &dto.JobPoster{
		ID:   user.ID,
		Name: user.DisplayName,
		Type: userType,
	}
}

func (s *JobServiceImpl) Create(ctx context.Context, posterID string, req *dto.CreateJobRequest) (*models.Job, error) {
	// postedBy пишется как есть из токена вызывающего; сверка с users
	// не делается - вакансию может завести и сам админ
	posterOID, err := primitive.ObjectIDFromHex(posterID)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid poster id")
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		PostedBy:    posterOID,
		Type:        req.Type,
		Status:      models.JobStatusActive,
		IsApproved:  false, // новая вакансия всегда ждет модерации
		Urgent:      req.Urgent,
		Location:    req.Location,
		Budget:      req.Budget,
	}

	if err := s.jobRepo.CreateGeneric(ctx, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Approve(ctx context.Context, id string, collection string) error {
	err := s.jobRepo.SetApproved(ctx, repositories.JobCollection(collection), id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *JobServiceImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	if !models.IsValidJobStatus(status) {
		return apperrors.ErrInvalidStatus("jobs", "Invalid job status")
	}

	err := s.jobRepo.UpdateGenericStatus(ctx, id, models.JobStatus(status))
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, id string, collection string) error {
	err := s.jobRepo.Delete(ctx, repositories.JobCollection(collection), id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// formatLocation склеивает "<район>, <округ>"; когда обе части пустые -
// возвращает заглушку
func formatLocation(area, district string) string {
	area = strings.TrimSpace(area)
	district = strings.TrimSpace(district)

	switch {
	case area == "" && district == "":
		return "Not specified"
	case area == "":
		return district
	case district == "":
		return area
	default:
		return area + ", " + district
	}
}

// parseBudget - best-effort разбор суммы из строки: берется ведущая
// последовательность цифр ("5000/day" -> 5000), иначе nil
func parseBudget(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	n := 0
	digits := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 {
		return nil
	}
	return &n
}

func derefType(t *models.UserType) models.UserType {
	if t == nil {
		return ""
	}
	return *t
}
