package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-resume-collector/internal/domain"
	"go-resume-collector/pkg/apperror"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Upload)
		candidates.GET("", handler.List)
		candidates.GET("/stats", handler.Stats)
		candidates.GET("/:id", handler.Get)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// uploadForm binds the multipart fields. Full validation of values happens
// in the usecase; binding only rejects structurally malformed input.
type uploadForm struct {
	FullName               string                `form:"full_name"`
	DOB                    string                `form:"dob"`
	ContactNumber          string                `form:"contact_number"`
	ContactAddress         string                `form:"contact_address"`
	EducationQualification string                `form:"education_qualification"`
	GraduationYear         int                   `form:"graduation_year"`
	YearsOfExperience      float64               `form:"years_of_experience"`
	SkillSet               string                `form:"skill_set"`
	Resume                 *multipart.FileHeader `form:"resume" binding:"required"`
}

type listQuery struct {
	Skill          string   `form:"skill"`
	MinExperience  *float64 `form:"min_experience"`
	MaxExperience  *float64 `form:"max_experience"`
	GraduationYear *int     `form:"graduation_year"`
}

// Upload godoc
// @Summary      Upload candidate resume
// @Description  Upload a new candidate resume (PDF/DOC/DOCX, max 10 MB) with metadata
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        full_name                formData  string  true   "Candidate's full name"
// @Param        dob                      formData  string  true   "Date of birth (YYYY-MM-DD)"
// @Param        contact_number           formData  string  true   "Contact phone number (10-12 digits)"
// @Param        contact_address          formData  string  true   "Full contact address"
// @Param        education_qualification  formData  string  true   "Highest education qualification"
// @Param        graduation_year          formData  int     true   "Year of graduation (1950-2030)"
// @Param        years_of_experience      formData  number  true   "Years of professional experience (0-50)"
// @Param        skill_set                formData  string  true   "Comma-separated list of skills"
// @Param        resume                   formData  file    true   "Resume file"
// @Success      201  {object}  domain.Candidate
// @Failure      400  {object}  response.ErrorBody
// @Failure      413  {object}  response.ErrorBody
// @Failure      422  {object}  response.ErrorBody
// @Router       /candidates [post]
func (h *CandidateHandler) Upload(c *gin.Context) {
	var form uploadForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.Validation("Request validation failed").WithDetail(err.Error()))
		return
	}

	// A body that cannot be read back is a malformed request, not a disk fault
	data, err := readUpload(form.Resume)
	if err != nil {
		c.Error(apperror.Validation("Failed to read uploaded file").WithDetail(err.Error()))
		return
	}

	candidate, err := h.candidateUC.Submit(c.Request.Context(), &domain.SubmitCandidateInput{
		FullName:               form.FullName,
		DOB:                    form.DOB,
		ContactNumber:          form.ContactNumber,
		ContactAddress:         form.ContactAddress,
		EducationQualification: form.EducationQualification,
		GraduationYear:         form.GraduationYear,
		YearsOfExperience:      form.YearsOfExperience,
		SkillSet:               form.SkillSet,
		ResumeFileName:         form.Resume.Filename,
		ResumeData:             data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// List godoc
// @Summary      List candidates
// @Description  List all candidates with optional skill, experience and graduation year filters
// @Tags         candidates
// @Produce      json
// @Param        skill            query  string  false  "Filter by skill (case-insensitive)"
// @Param        min_experience   query  number  false  "Minimum years of experience (inclusive)"
// @Param        max_experience   query  number  false  "Maximum years of experience (inclusive)"
// @Param        graduation_year  query  int     false  "Filter by graduation year"
// @Success      200  {array}   domain.Candidate
// @Failure      422  {object}  response.ErrorBody
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(apperror.Validation("Invalid query parameters").WithDetail(err.Error()))
		return
	}

	candidates, err := h.candidateUC.Query(c.Request.Context(), domain.CandidateFilter{
		Skill:          q.Skill,
		MinExperience:  q.MinExperience,
		MaxExperience:  q.MaxExperience,
		GraduationYear: q.GraduationYear,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}

// Get godoc
// @Summary      Get candidate by ID
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  domain.Candidate
// @Failure      404  {object}  response.ErrorBody
// @Failure      422  {object}  response.ErrorBody
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := candidateID(c)
	if !ok {
		return
	}

	candidate, err := h.candidateUC.Find(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// Delete godoc
// @Summary      Delete candidate
// @Description  Delete a candidate record and its stored resume file
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  domain.DeleteResult
// @Failure      404  {object}  response.ErrorBody
// @Failure      422  {object}  response.ErrorBody
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := candidateID(c)
	if !ok {
		return
	}

	result, err := h.candidateUC.Remove(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Stats godoc
// @Summary      Store statistics
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  domain.StoreStats
// @Router       /candidates/stats [get]
func (h *CandidateHandler) Stats(c *gin.Context) {
	stats, err := h.candidateUC.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func candidateID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.Error(apperror.Validation("Candidate ID must be a positive integer"))
		return 0, false
	}
	return id, true
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
