package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
)

// TabController gerencia as requisições relacionadas a comandas
type TabController struct {
	tabService *service.TabService
	logger     logger.Logger
}

// NewTabController cria uma nova instância de TabController
func NewTabController(tabService *service.TabService, logger logger.Logger) *TabController {
	return &TabController{
		tabService: tabService,
		logger:     logger,
	}
}

// Create abre uma nova comanda
// @Summary Abrir comanda
// @Description Abre uma comanda de mesa, balcão ou entrega. Comanda de mesa ocupa a mesa informada.
// @Tags tabs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tab body dto.CreateTabRequest true "Dados da comanda"
// @Success 201 {object} dto.TabResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tabs [post]
func (c *TabController) Create(ctx *gin.Context) {
	userID := middleware.UserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário não autenticado", ""))
		return
	}

	var req dto.CreateTabRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	t, err := c.tabService.Create(ctx.Request.Context(), service.CreateTabInput{
		Kind:         req.Kind,
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		CreatedBy:    userID,
	})
	if err != nil {
		respondError(ctx, c.logger, "erro ao abrir comanda", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTabResponse(t))
}

// List lista as comandas
// @Summary Listar comandas
// @Description Lista as comandas mais recentes primeiro, com filtros opcionais
// @Tags tabs
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param kind query string false "Tipo (table, counter, delivery)"
// @Param status query string false "Status (open, awaiting_payment, closed)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.TabListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tabs [get]
func (c *TabController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	tabs, err := c.tabService.List(ctx.Request.Context(),
		ctx.Query("kind"), ctx.Query("status"),
		pagination.PageSize, pagination.Offset())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar comandas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTabListResponse(tabs, pagination.Page, pagination.PageSize))
}

// Get busca uma comanda com itens, pagamentos, subcomandas e saldos
// @Summary Buscar comanda
// @Tags tabs
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da comanda"
// @Success 200 {object} dto.TabDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tabs/{id} [get]
func (c *TabController) Get(ctx *gin.Context) {
	summary, err := c.tabService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar comanda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTabDetailResponse(summary))
}

// UpdateStatus altera o status da comanda manualmente
// @Summary Alterar status da comanda
// @Description Ajuste administrativo: ignora a regra de pagamentos e projeta o novo status na mesa
// @Tags tabs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da comanda"
// @Param status body dto.UpdateTabStatusRequest true "Novo status"
// @Success 200 {object} dto.UpdateTabStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tabs/{id}/status [put]
func (c *TabController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateTabStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	t, err := c.tabService.OverrideStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar status da comanda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUpdateTabStatusResponse(t))
}

// Split divide a comanda em subcomandas
// @Summary Dividir comanda
// @Description Cria uma subcomanda por cliente. A comanda não pode ter pedidos ou pagamentos diretos.
// @Tags tabs
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da comanda"
// @Param split body dto.SplitTabRequest true "Clientes"
// @Success 201 {array} dto.SubTabResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tabs/{id}/sub-tabs [post]
func (c *TabController) Split(ctx *gin.Context) {
	var req dto.SplitTabRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "dados inválidos", err)
		return
	}

	subs, err := c.tabService.Split(ctx.Request.Context(), ctx.Param("id"), req.CustomerNames)
	if err != nil {
		respondError(ctx, c.logger, "erro ao dividir comanda", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNewSubTabResponses(subs))
}

// GetSubTab busca uma subcomanda
// @Summary Buscar subcomanda
// @Tags tabs
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da comanda"
// @Param subId path string true "ID da subcomanda"
// @Success 200 {object} dto.SubTabResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tabs/{id}/sub-tabs/{subId} [get]
func (c *TabController) GetSubTab(ctx *gin.Context) {
	summary, err := c.tabService.GetSubTab(ctx.Request.Context(), ctx.Param("id"), ctx.Param("subId"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar subcomanda", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubTabResponse(summary))
}
