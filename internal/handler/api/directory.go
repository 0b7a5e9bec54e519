package api

import (
	"net/http"

	reqdto "clinic-scheduler/internal/handler/dto/request"
	resdto "clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/handler/httperr"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/commands"
	"clinic-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	cmds commands.DirectoryCommands
	q    queries.DirectoryQueries
}

func NewDirectoryHandler(cmds commands.DirectoryCommands, q queries.DirectoryQueries) *DirectoryHandler {
	return &DirectoryHandler{cmds: cmds, q: q}
}

// respond writes a mapped view or a 500 when the mapping failed.
func respond[T any](c *gin.Context, status int, res T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Mark(err, errViewMapping), "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} resdto.DepartmentResponse
// @Router /departments [get]
func (h *DirectoryHandler) ListDepartments(c *gin.Context) {
	views, err := h.q.ListDepartments(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDepartmentViews(views)
	respond(c, http.StatusOK, res, err)
}

// @Summary Get department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} resdto.DepartmentResponse
// @Failure 404 {object} httperr.Response
// @Router /departments/{id} [get]
func (h *DirectoryHandler) GetDepartment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetDepartment(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDepartmentView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDepartmentRequest true "Department"
// @Success 201 {object} resdto.DepartmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /departments [post]
func (h *DirectoryHandler) CreateDepartment(c *gin.Context) {
	var req reqdto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreateDepartment(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetDepartment(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDepartmentView(view)
	respond(c, http.StatusCreated, res, err)
}

// @Summary Update department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body reqdto.UpdateDepartmentRequest true "Fields to change"
// @Success 200 {object} resdto.DepartmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /departments/{id} [patch]
func (h *DirectoryHandler) UpdateDepartment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateDepartment(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetDepartment(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDepartmentView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Delete department
// @Description Fails with 409 while doctors still belong to it
// @Tags departments
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /departments/{id} [delete]
func (h *DirectoryHandler) DeleteDepartment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteDepartment(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List doctors
// @Tags doctors
// @Produce json
// @Param department_id query int false "Only doctors of this department"
// @Success 200 {array} resdto.DoctorResponse
// @Failure 400 {object} httperr.Response
// @Router /doctors [get]
func (h *DirectoryHandler) ListDoctors(c *gin.Context) {
	departmentID, ok := optionalIDQuery(c, "department_id")
	if !ok {
		return
	}
	views, err := h.q.ListDoctors(c.Request.Context(), departmentID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDoctorViews(views)
	respond(c, http.StatusOK, res, err)
}

// @Summary Get doctor
// @Tags doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} resdto.DoctorResponse
// @Failure 404 {object} httperr.Response
// @Router /doctors/{id} [get]
func (h *DirectoryHandler) GetDoctor(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetDoctor(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDoctorView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Create doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDoctorRequest true "Doctor"
// @Success 201 {object} resdto.DoctorResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /doctors [post]
func (h *DirectoryHandler) CreateDoctor(c *gin.Context) {
	var req reqdto.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreateDoctor(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetDoctor(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDoctorView(view)
	respond(c, http.StatusCreated, res, err)
}

// @Summary Update doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Doctor ID"
// @Param request body reqdto.UpdateDoctorRequest true "Fields to change"
// @Success 200 {object} resdto.DoctorResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /doctors/{id} [patch]
func (h *DirectoryHandler) UpdateDoctor(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateDoctor(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetDoctor(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromDoctorView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Delete doctor
// @Description Also removes the doctor's slots, templates and appointments
// @Tags doctors
// @Security BearerAuth
// @Param id path int true "Doctor ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /doctors/{id} [delete]
func (h *DirectoryHandler) DeleteDoctor(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteDoctor(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List patients
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PatientResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /patients [get]
func (h *DirectoryHandler) ListPatients(c *gin.Context) {
	views, err := h.q.ListPatients(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPatientViews(views)
	respond(c, http.StatusOK, res, err)
}

// @Summary My patient profile
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PatientResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /patients/me [get]
func (h *DirectoryHandler) MyPatientProfile(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	view, err := h.q.MyPatientProfile(c.Request.Context(), principal)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPatientView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Get patient
// @Description Staff can read any profile, patients only their own
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} resdto.PatientResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /patients/{id} [get]
func (h *DirectoryHandler) GetPatient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	view, err := h.q.GetPatient(c.Request.Context(), principal, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPatientView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Create patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePatientRequest true "Patient"
// @Success 201 {object} resdto.PatientResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /patients [post]
func (h *DirectoryHandler) CreatePatient(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreatePatient(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetPatient(c.Request.Context(), principal, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPatientView(view)
	respond(c, http.StatusCreated, res, err)
}

// @Summary Update patient
// @Description Staff can edit any profile, patients only their own
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Param request body reqdto.UpdatePatientRequest true "Fields to change"
// @Success 200 {object} resdto.PatientResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /patients/{id} [patch]
func (h *DirectoryHandler) UpdatePatient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdatePatient(c.Request.Context(), principal, id, req.ToPatch()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetPatient(c.Request.Context(), principal, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	res, err := resdto.FromPatientView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Delete patient
// @Tags patients
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /patients/{id} [delete]
func (h *DirectoryHandler) DeletePatient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeletePatient(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
