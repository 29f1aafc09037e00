package routes

import (
	"catering_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes     = "/quotes"
	PathInvoices   = "/invoices"
	PathMilestones = "/milestones"
	PathPayments   = "/payments"
)

func addCateringRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.PaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.SubmitQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/status", quoteHandler.TransitionQuote)
		quotes.GET("/:id/history", quoteHandler.QuoteHistory)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.TransitionInvoice)
		invoices.GET("/:id/history", invoiceHandler.InvoiceHistory)
		invoices.POST("/:id/milestones", invoiceHandler.CreateMilestone)
	}

	milestones := rg.Group(PathMilestones)
	{
		milestones.GET("/:id", invoiceHandler.GetMilestone)
		milestones.POST("/:id/payments", paymentHandler.PayMilestone)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/webhook", paymentHandler.PaymentWebhook)
	}
}
