package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
)

// TableController gerencia as requisições relacionadas a mesas
type TableController struct {
	tableService *service.TableService
	logger       logger.Logger
}

// NewTableController cria uma nova instância de TableController
func NewTableController(tableService *service.TableService, logger logger.Logger) *TableController {
	return &TableController{
		tableService: tableService,
		logger:       logger,
	}
}

// List lista as mesas
// @Summary Listar mesas
// @Description Lista as mesas com o status projetado da comanda ativa
// @Tags tables
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.TableResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /tables [get]
func (c *TableController) List(ctx *gin.Context) {
	tables, err := c.tableService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar mesas", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTableResponses(tables))
}

// Get busca uma mesa
// @Summary Buscar mesa
// @Tags tables
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da mesa"
// @Success 200 {object} dto.TableResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tables/{id} [get]
func (c *TableController) Get(ctx *gin.Context) {
	t, err := c.tableService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar mesa", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTableResponse(t))
}

// OpenTab abre uma comanda na mesa
// @Summary Abrir comanda na mesa
// @Description A mesa precisa estar livre
// @Tags tables
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da mesa"
// @Param tab body dto.OpenTableTabRequest false "Cliente"
// @Success 201 {object} dto.TabResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tables/{id}/tabs [post]
func (c *TableController) OpenTab(ctx *gin.Context) {
	userID := middleware.UserID(ctx)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário não autenticado", ""))
		return
	}

	var req dto.OpenTableTabRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, "dados inválidos", err)
			return
		}
	}

	t, err := c.tableService.OpenTab(ctx.Request.Context(), ctx.Param("id"), req.CustomerName, userID)
	if err != nil {
		respondError(ctx, c.logger, "erro ao abrir comanda na mesa", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTabResponse(t))
}
