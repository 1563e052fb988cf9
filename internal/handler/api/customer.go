package api

import (
	"errors"
	"net/http"

	"neko-hotel/internal/domain/customer"
	reqdto "neko-hotel/internal/handler/dto/request"
	resdto "neko-hotel/internal/handler/dto/response"
	"neko-hotel/internal/usecase/commands"
	"neko-hotel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customerUseCase commands.CustomerCommands
	customerQueries queries.CustomerQueries
}

func NewCustomerHandler(customerUseCase commands.CustomerCommands, customerQueries queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
		customerQueries: customerQueries,
	}
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CustomerView
// @Failure 401 {object} map[string]string
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	views, err := h.customerQueries.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get customer
// @Description Get one customer with their cats
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} queries.CustomerView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	view, err := h.customerQueries.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CustomerRequest true "Customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.customerUseCase.CreateCustomer(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCustomer(created))
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer request"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.customerUseCase.UpdateCustomer(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomer(updated))
}

// @Summary Delete customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	if err := h.customerUseCase.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.respondCustomerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add cat
// @Description Register a cat under a customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.CatRequest true "Cat request"
// @Success 201 {object} resdto.CatResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/cats [post]
func (h *CustomerHandler) AddCat(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	var req reqdto.CatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cat, err := h.customerUseCase.AddCat(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		h.respondCustomerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCat(cat))
}

// @Summary Remove cat
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param catId path string true "Cat ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/cats/{catId} [delete]
func (h *CustomerHandler) RemoveCat(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer ID format",
		})
		return
	}

	catID, err := uuid.Parse(c.Param("catId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cat ID format",
		})
		return
	}

	if err := h.customerUseCase.RemoveCat(c.Request.Context(), ownerID, catID); err != nil {
		h.respondCustomerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) respondCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errors.Is(err, commands.ErrCatNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cat not found",
		})
	case errors.Is(err, commands.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Email already registered",
		})
	case errors.Is(err, customer.ErrEmptyName), errors.Is(err, customer.ErrEmptyCatName):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
