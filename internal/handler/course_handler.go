package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/middleware"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type CourseHandler struct {
	courseService service.CourseService
	validator     *validation.Validator
}

func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validator:     validation.NewValidator(),
	}
}

// requireIdentity returns the authenticated identity; routes behind
// RequireAuth always have one.
func requireIdentity(c *fiber.Ctx) (domain.Identity, error) {
	identity := middleware.IdentityFromCtx(c)
	if identity == nil {
		return domain.Identity{}, domain.NewUnauthenticatedError("Authentication required")
	}
	return *identity, nil
}

// ListCourses returns the published course catalog.
// @Summary List published courses
// @Description Published courses newest first with instructor and counts.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseListItemResponse
// @Router /api/courses [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.courseService.ListPublishedCourses(c.Context())
	if err != nil {
		return err
	}

	response := make([]dto.CourseListItemResponse, len(courses))
	for i := range courses {
		response[i] = dto.ToCourseListItemResponse(&courses[i])
	}
	return c.JSON(response)
}

// GetCourse returns one course with lessons and reviews.
// @Summary Get course detail
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/courses/{id} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	detail, err := h.courseService.GetCourseDetail(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToCourseDetailResponse(detail))
}

// ListMyCourses returns the caller's authored courses, drafts included.
// @Summary List own courses
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Router /api/my-courses [get]
func (h *CourseHandler) ListMyCourses(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	courses, err := h.courseService.ListInstructorCourses(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	response := make([]dto.CourseResponse, len(courses))
	for i := range courses {
		response[i] = dto.ToCourseResponse(&courses[i])
	}
	return c.JSON(response)
}

// CreateCourse creates a course owned by the caller.
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course details"
// @Success 201 {object} dto.CourseResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /api/courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateCourseRequest(&req); len(errs) > 0 {
		return errs
	}

	course, err := h.courseService.CreateCourse(c.Context(), identity, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCourseResponse(course))
}

// UpdateCourse partially updates an owned course.
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.CourseResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	course, err := h.courseService.UpdateCourse(c.Context(), identity, c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToCourseResponse(course))
}

// DeleteCourse removes an owned course.
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.courseService.DeleteCourse(c.Context(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Course deleted"})
}

// ListLessons returns a course's lessons in display order.
// @Summary List lessons of a course
// @Tags lessons
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} dto.LessonResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/courses/{id}/lessons [get]
func (h *CourseHandler) ListLessons(c *fiber.Ctx) error {
	lessons, err := h.courseService.ListLessons(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	response := make([]dto.LessonResponse, len(lessons))
	for i := range lessons {
		response[i] = dto.ToLessonResponse(&lessons[i])
	}
	return c.JSON(response)
}

// CreateLesson adds a lesson to an owned course.
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.CreateLessonRequest true "Lesson details"
// @Success 201 {object} dto.LessonResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /api/courses/{id}/lessons [post]
func (h *CourseHandler) CreateLesson(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateLessonRequest(&req); len(errs) > 0 {
		return errs
	}

	lesson, err := h.courseService.CreateLesson(c.Context(), identity, c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLessonResponse(lesson))
}

// UpdateLesson partially updates a lesson of an owned course.
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body dto.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} dto.LessonResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/lessons/{id} [put]
func (h *CourseHandler) UpdateLesson(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	lesson, err := h.courseService.UpdateLesson(c.Context(), identity, c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToLessonResponse(lesson))
}

// DeleteLesson removes a lesson of an owned course.
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/lessons/{id} [delete]
func (h *CourseHandler) DeleteLesson(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.courseService.DeleteLesson(c.Context(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Lesson deleted"})
}

// ListReviews returns a course's reviews newest first.
// @Summary List reviews of a course
// @Tags reviews
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} dto.ReviewResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/courses/{id}/reviews [get]
func (h *CourseHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.courseService.ListReviews(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	response := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		response[i] = dto.ToReviewResponse(&reviews[i])
	}
	return c.JSON(response)
}

// CreateReview leaves a review on a course.
// @Summary Review a course
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.ReviewResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/courses/{id}/reviews [post]
// @Router /api/reviews [post]
func (h *CourseHandler) CreateReview(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateReviewRequest(&req); len(errs) > 0 {
		return errs
	}

	// The nested route carries the course in the path, the flat one in
	// the body.
	courseID := c.Params("id")
	if courseID == "" {
		courseID = req.CourseID
	}
	if courseID == "" {
		return domain.NewInvalidInputError("A course id is required")
	}

	review, err := h.courseService.CreateReview(c.Context(), identity, courseID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		CourseID:  review.CourseID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	})
}

// Enroll registers the caller in a course.
// @Summary Enroll in a course
// @Tags enrollments
// @Produce json
// @Param id path string true "Course ID"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/courses/{id}/enroll [post]
// @Router /api/enrollments [post]
func (h *CourseHandler) Enroll(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	courseID := c.Params("id")
	if courseID == "" {
		var req dto.EnrollRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
		if req.CourseID == "" {
			return domain.NewInvalidInputError("A course id is required")
		}
		courseID = req.CourseID
	}

	enrollment, err := h.courseService.Enroll(c.Context(), identity, courseID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToEnrollmentResponse(enrollment))
}

// ListMyEnrollments returns the caller's enrollments with courses.
// @Summary List own enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {array} dto.EnrollmentWithCourseResponse
// @Router /api/enrollments [get]
func (h *CourseHandler) ListMyEnrollments(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	enrollments, err := h.courseService.ListUserEnrollments(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	response := make([]dto.EnrollmentWithCourseResponse, len(enrollments))
	for i := range enrollments {
		response[i] = dto.ToEnrollmentWithCourseResponse(&enrollments[i])
	}
	return c.JSON(response)
}

// ListCourseEnrollments returns the roster of an owned course.
// @Summary List enrollments of a course
// @Tags enrollments
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {array} dto.EnrollmentWithUserResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Router /api/courses/{id}/enrollments [get]
func (h *CourseHandler) ListCourseEnrollments(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	enrollments, err := h.courseService.ListCourseEnrollments(c.Context(), identity, c.Params("id"))
	if err != nil {
		return err
	}

	response := make([]dto.EnrollmentWithUserResponse, len(enrollments))
	for i := range enrollments {
		response[i] = dto.ToEnrollmentWithUserResponse(&enrollments[i])
	}
	return c.JSON(response)
}

// UpdateProgress reports the caller's completion progress in a course.
// @Summary Update enrollment progress
// @Tags enrollments
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body dto.UpdateProgressRequest true "Progress"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/enrollments/{courseId}/progress [put]
func (h *CourseHandler) UpdateProgress(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateProgressRequest(&req); len(errs) > 0 {
		return errs
	}

	enrollment, err := h.courseService.UpdateProgress(c.Context(), identity, c.Params("courseId"), req.Progress)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToEnrollmentResponse(enrollment))
}
