package controllers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/Jumah/dukani-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

// notifyStorefront tells the customer-facing application that an order has
// been priced so it can prompt the customer to confirm. Failures are logged,
// not surfaced: the order update has already committed.
func notifyStorefront(order models.Order) error {
	storefrontURL := os.Getenv("STOREFRONT_URL")
	if storefrontURL == "" {
		return fmt.Errorf("STOREFRONT_URL is not set")
	}

	payload := map[string]any{
		"event":           "order.priced",
		"orderId":         order.ID,
		"finalPrice":      order.FinalPrice,
		"shippingCharges": order.ShippingCharges,
		"status":          order.Status,
	}

	resp, err := resty.New().SetTimeout(30 * time.Second).
		R().
		SetHeaders(map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		}).
		SetBody(payload).
		Post(storefrontURL + "/webhooks/order-priced")

	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("storefront webhook failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}

func sendOrderPricedEmail(order models.Order) error {
	emailData := utils.EmailData{
		Name:      order.FirstName,
		Message:   fmt.Sprintf("Shipping for order #%d has been set at %.2f, bringing your total to %.2f. Please confirm your order to proceed.", order.ID, *order.ShippingCharges, *order.FinalPrice),
		ActionURL: os.Getenv("FRONTEND_URL") + "/orders/" + strconv.Itoa(int(order.ID)) + "/confirm",
		LogoURL:   "https://www.dukani.store/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "order_priced.html")
	return utils.SendEmail(order.Email, "Your order total is ready", emailData, templatePath)
}

// GetOrders lists orders with pagination, status filter, id search and sort.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")
	countQuery := initializers.DB.Model(&models.Order{})

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}
	if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ?", "%"+search+"%")
		countQuery = countQuery.Where("id LIKE ?", "%"+search+"%")
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("OrderItems").First(&order, orderId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus moves an order along its lifecycle. Transitions are
// checked against the allowed table; writing the current status again is a
// no-op that still succeeds.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	if !models.IsValidOrderStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	if !order.CanTransitionTo(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("Cannot move order from %s to %s", order.Status, orderStatusData.Status))
		return
	}

	if order.Status == orderStatusData.Status {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status unchanged."})
		return
	}

	if result := initializers.DB.Model(&order).Update("status", orderStatusData.Status); result.Error != nil {
		log.Println("Order status update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	notification := models.Notification{
		Title:   "Order update",
		Message: fmt.Sprintf("Order #%d is now %s.", order.ID, orderStatusData.Status),
		Type:    models.NotificationTypeOrder,
		UserID:  order.UserID,
	}
	if err := initializers.DB.Create(&notification).Error; err != nil {
		log.Println("Error recording order notification:", err)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

// SetShippingPrice prices an order awaiting admin review. The final price is
// recomputed here from the stored item snapshots; any client-derived total is
// ignored.
func SetShippingPrice(ctx *gin.Context) {
	var shippingData struct {
		ShippingCharges *float64 `json:"shippingCharges" binding:"required"`
		AdminNotes      string   `json:"adminNotes"`
	}
	if err := ctx.ShouldBindJSON(&shippingData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if *shippingData.ShippingCharges < 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Shipping charges cannot be negative")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("OrderItems").First(&order, orderId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	if order.Status != models.OrderStatusPendingReview {
		sendErrorResponse(ctx, http.StatusBadRequest, "Order is not awaiting shipping review")
		return
	}

	shippingCharges := *shippingData.ShippingCharges
	finalPrice := order.ComputeFinalPrice(shippingCharges)

	if result := initializers.DB.Model(&order).Updates(map[string]any{
		"shipping_charges": shippingCharges,
		"final_price":      finalPrice,
		"admin_notes":      shippingData.AdminNotes,
		"status":           models.OrderStatusAwaitingConfirmation,
	}); result.Error != nil {
		log.Println("Shipping price update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to set shipping price")
		return
	}

	order.ShippingCharges = &shippingCharges
	order.FinalPrice = &finalPrice
	order.Status = models.OrderStatusAwaitingConfirmation

	if err := sendOrderPricedEmail(order); err != nil {
		log.Println("Error sending order priced email:", err)
	}
	if err := notifyStorefront(order); err != nil {
		log.Println("Error notifying storefront:", err)
	}

	notification := models.Notification{
		Title:   "Order priced",
		Message: fmt.Sprintf("Shipping for order #%d has been set. Please confirm your order.", order.ID),
		Type:    models.NotificationTypeOrder,
		UserID:  order.UserID,
	}
	if err := initializers.DB.Create(&notification).Error; err != nil {
		log.Println("Error recording order notification:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":         "Shipping price set. The customer has been asked to confirm.",
		"shippingCharges": shippingCharges,
		"finalPrice":      finalPrice,
		"status":          order.Status,
	})
}

func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	result := initializers.DB.Delete(&models.Order{}, orderId)
	if result.Error != nil {
		log.Println("Order deletion error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func GetOrdersAwaitingReview(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPendingReview).
		Count(&count)

	if result.Error != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders awaiting review"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"awaitingReviewCount": count})
}
