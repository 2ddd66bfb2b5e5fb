package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jumah/dukani-admin-api/initializers"
	"github.com/Jumah/dukani-admin-api/models"
	"github.com/gin-gonic/gin"
)

// reportWindow reads the from/to query params, defaulting to the last 30
// days. Dates use the 2006-01-02 layout.
func reportWindow(ctx *gin.Context) (time.Time, time.Time) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if fromStr := ctx.Query("from"); fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", fromStr); err == nil {
			from = parsed
		}
	}
	if toStr := ctx.Query("to"); toStr != "" {
		if parsed, err := time.Parse("2006-01-02", toStr); err == nil {
			// Include the whole end day.
			to = parsed.AddDate(0, 0, 1)
		}
	}
	return from, to
}

func GetDashboardStats(ctx *gin.Context) {
	var totalOrders, awaitingReview, totalUsers, totalProducts, pendingReviews int64
	var revenue float64

	initializers.DB.Model(&models.Order{}).Count(&totalOrders)
	initializers.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPendingReview).
		Count(&awaitingReview)
	initializers.DB.Model(&models.Order{}).
		Where("final_price IS NOT NULL AND status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(final_price), 0)").
		Scan(&revenue)
	initializers.DB.Model(&models.User{}).Count(&totalUsers)
	initializers.DB.Model(&models.Product{}).Count(&totalProducts)
	initializers.DB.Model(&models.Review{}).
		Where("status = ?", models.ReviewStatusPending).
		Count(&pendingReviews)

	ctx.JSON(http.StatusOK, gin.H{
		"totalOrders":          totalOrders,
		"ordersAwaitingReview": awaitingReview,
		"revenue":              revenue,
		"totalUsers":           totalUsers,
		"totalProducts":        totalProducts,
		"pendingReviews":       pendingReviews,
	})
}

func GetOrdersReport(ctx *gin.Context) {
	from, to := reportWindow(ctx)

	var statusCounts []struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	result := initializers.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("status").
		Scan(&statusCounts)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to build orders report", result.Error)
		return
	}

	var revenue float64
	initializers.DB.Model(&models.Order{}).
		Where("created_at BETWEEN ? AND ? AND final_price IS NOT NULL AND status != ?", from, to, models.OrderStatusCancelled).
		Select("COALESCE(SUM(final_price), 0)").
		Scan(&revenue)

	var totalOrders int64
	initializers.DB.Model(&models.Order{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Count(&totalOrders)

	ctx.JSON(http.StatusOK, gin.H{
		"from":           from,
		"to":             to,
		"totalOrders":    totalOrders,
		"revenue":        revenue,
		"ordersByStatus": statusCounts,
	})
}

func GetInventoryReport(ctx *gin.Context) {
	from, to := reportWindow(ctx)

	var stockValue float64
	initializers.DB.Model(&models.Product{}).
		Select("COALESCE(SUM(price * stock), 0)").
		Scan(&stockValue)

	var lowStock, outOfStock int64
	initializers.DB.Model(&models.Product{}).
		Where("stock > 0 AND stock <= low_stock_threshold").
		Count(&lowStock)
	initializers.DB.Model(&models.Product{}).Where("stock = 0").Count(&outOfStock)

	var adjustments []struct {
		Action string `json:"action"`
		Count  int64  `json:"count"`
		Units  int64  `json:"units"`
	}
	result := initializers.DB.Model(&models.InventoryLog{}).
		Select("action, COUNT(*) as count, COALESCE(SUM(quantity), 0) as units").
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("action").
		Scan(&adjustments)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to build inventory report", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"from":        from,
		"to":          to,
		"stockValue":  stockValue,
		"lowStock":    lowStock,
		"outOfStock":  outOfStock,
		"adjustments": adjustments,
	})
}

func GetCustomersReport(ctx *gin.Context) {
	from, to := reportWindow(ctx)

	var totalCustomers, newCustomers, verifiedCustomers int64
	initializers.DB.Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Count(&totalCustomers)
	initializers.DB.Model(&models.User{}).
		Where("role = ? AND created_at BETWEEN ? AND ?", models.RoleCustomer, from, to).
		Count(&newCustomers)
	initializers.DB.Model(&models.User{}).
		Where("role = ? AND verified = ?", models.RoleCustomer, true).
		Count(&verifiedCustomers)

	var topCustomers []struct {
		UserID     int     `json:"userId"`
		OrderCount int64   `json:"orderCount"`
		Spend      float64 `json:"spend"`
	}
	result := initializers.DB.Model(&models.Order{}).
		Select("user_id, COUNT(*) as order_count, COALESCE(SUM(final_price), 0) as spend").
		Where("created_at BETWEEN ? AND ? AND status != ?", from, to, models.OrderStatusCancelled).
		Group("user_id").
		Order("spend desc").
		Limit(10).
		Scan(&topCustomers)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to build customers report", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"from":              from,
		"to":                to,
		"totalCustomers":    totalCustomers,
		"newCustomers":      newCustomers,
		"verifiedCustomers": verifiedCustomers,
		"topCustomers":      topCustomers,
	})
}

// GetProductsPerformance ranks products by units sold and revenue over the
// report window, from the order item snapshots.
func GetProductsPerformance(ctx *gin.Context) {
	from, to := reportWindow(ctx)
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	var performance []struct {
		ProductId int     `json:"productId"`
		Name      string  `json:"name"`
		UnitsSold int64   `json:"unitsSold"`
		Revenue   float64 `json:"revenue"`
	}
	result := initializers.DB.Model(&models.OrderItem{}).
		Select("order_items.product_id, order_items.name, COALESCE(SUM(order_items.quantity), 0) as units_sold, COALESCE(SUM(order_items.price * order_items.quantity), 0) as revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at BETWEEN ? AND ? AND orders.status != ?", from, to, models.OrderStatusCancelled).
		Group("order_items.product_id, order_items.name").
		Order("revenue desc").
		Limit(limit).
		Scan(&performance)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to build product performance report", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"from":     from,
		"to":       to,
		"products": performance,
	})
}
