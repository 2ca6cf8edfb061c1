// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/transaction-categorizer/backend/internal/application/usecase/transaction"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
	csvparser "github.com/transaction-categorizer/backend/internal/integration/csv"
	"github.com/transaction-categorizer/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	saveUseCase *transaction.SaveTransactionsUseCase
	listUseCase *transaction.ListTransactionsUseCase
	getUseCase  *transaction.GetTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	saveUseCase *transaction.SaveTransactionsUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		saveUseCase: saveUseCase,
		listUseCase: listUseCase,
		getUseCase:  getUseCase,
	}
}

// Submit handles POST /transactions requests.
func (c *TransactionController) Submit(ctx *gin.Context) {
	var req dto.SubmitTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	record := req.ToEntity()
	if err := c.saveUseCase.Execute(ctx.Request.Context(), []*entity.Transaction{record}); err != nil {
		slog.Error("Failed to submit transaction", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Error submitting transaction",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "Successfully ingested the data",
	})
}

// Upload handles POST /transactions/upload requests carrying a CSV file.
func (c *TransactionController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "No file uploaded.",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to open uploaded file",
		})
		return
	}
	defer file.Close()

	transactions, err := csvparser.Parse(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid CSV file: " + err.Error(),
		})
		return
	}

	if err := c.saveUseCase.Execute(ctx.Request.Context(), transactions); err != nil {
		slog.Error("Failed to ingest uploaded transactions", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Error submitting transaction",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{
		Message: "Successfully ingested the data",
	})
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	transactions, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.Error("Failed to list transactions", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Error retrieving transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(transactions))
}

// GetByID handles GET /transactions/:id requests.
func (c *TransactionController) GetByID(ctx *gin.Context) {
	transaction, err := c.getUseCase.Execute(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		slog.Error("Failed to retrieve transaction", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Error retrieving transaction",
		})
		return
	}
	if transaction == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}
