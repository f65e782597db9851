package routes

import (
	"net/http"

	"Mobilia/internal/contracts"
	"Mobilia/internal/domain/person"
	appErrors "Mobilia/internal/errors"
	"Mobilia/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCustomer(c *gin.Context) {
	var body contracts.CustomerCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &person.CreateCustomerRequest{
		Name:     body.Name,
		Document: body.Document,
		Email:    body.Email,
		Phone:    body.Phone,
		Address:  body.Address,
		City:     body.City,
		Notes:    body.Notes,
	}

	ctx := c.Request.Context()
	customer, err := h.PersonService.CreateCustomer(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CustomerCreateResponse{
		Message:  "Cliente criado com sucesso",
		Customer: customer,
	})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &person.UpdateCustomerRequest{
		Name:     body.Name,
		Document: body.Document,
		Email:    body.Email,
		Phone:    body.Phone,
		Address:  body.Address,
		City:     body.City,
		Notes:    body.Notes,
		IsActive: body.IsActive,
	}

	ctx := c.Request.Context()
	if err := h.PersonService.UpdateCustomer(ctx, customerID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Cliente atualizado com sucesso"})
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	customer, err := h.PersonService.GetCustomerById(ctx, customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CustomerSingleResponse{Customer: customer})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	customers, total, err := h.PersonService.ListCustomers(ctx, c.Query("search"), pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(customers, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var body contracts.SupplierCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &person.CreateSupplierRequest{
		Name:     body.Name,
		Document: body.Document,
		Email:    body.Email,
		Phone:    body.Phone,
	}

	ctx := c.Request.Context()
	supplier, err := h.PersonService.CreateSupplier(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.SupplierCreateResponse{
		Message:  "Fornecedor criado com sucesso",
		Supplier: supplier,
	})
}

func (h *Handler) GetSupplier(c *gin.Context) {
	supplierID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	supplier, err := h.PersonService.GetSupplierById(ctx, supplierID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SupplierSingleResponse{Supplier: supplier})
}

func (h *Handler) ListSuppliers(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	suppliers, total, err := h.PersonService.ListSuppliers(ctx, c.Query("search"), pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(suppliers, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var body contracts.EmployeeCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &person.CreateEmployeeRequest{
		Name:                 body.Name,
		Role:                 person.EmployeeRole(body.Role),
		CommissionPercentage: body.CommissionPercentage,
		Phone:                body.Phone,
	}

	ctx := c.Request.Context()
	employee, err := h.PersonService.CreateEmployee(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.EmployeeCreateResponse{
		Message:  "Funcionário criado com sucesso",
		Employee: employee,
	})
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	employeeID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &person.UpdateEmployeeRequest{
		Name:                 body.Name,
		CommissionPercentage: body.CommissionPercentage,
		IsActive:             body.IsActive,
	}

	if body.Role != nil {
		role := person.EmployeeRole(*body.Role)
		req.Role = &role
	}

	ctx := c.Request.Context()
	if err := h.PersonService.UpdateEmployee(ctx, employeeID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Funcionário atualizado com sucesso"})
}

func (h *Handler) GetEmployee(c *gin.Context) {
	employeeID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	employee, err := h.PersonService.GetEmployeeById(ctx, employeeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EmployeeSingleResponse{Employee: employee})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	pagination := h.parsePagination(c)
	role := person.EmployeeRole(c.Query("role"))

	ctx := c.Request.Context()
	employees, total, err := h.PersonService.ListEmployees(ctx, role, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(employees, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}
