package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Dukani Admin API.

The following are the endpoint groups for this API:

AUTH
- POST "/auth/login" - Staff login
- GET "/admin/profile" - Validate session and fetch profile

USERS
- GET "/admin/users" - List users
- POST "/admin/users/create" - Create user (starts OTP onboarding)
- POST "/admin/users/verify-otp" - Verify a user's email code
- POST "/admin/users/complete-profile" - Finish onboarding
- PUT "/admin/users/:id/status" - Activate or deactivate

PRODUCTS & CATEGORIES
- GET/POST/PUT/DELETE "/admin/products" - Manage products
- PUT "/admin/products/:id/stock" | "/featured" | "/status"
- GET/POST/PUT/DELETE "/admin/categories"

ORDERS
- GET "/admin/orders" - List orders
- PUT "/admin/orders/:orderId/status" - Move an order along its lifecycle
- POST "/admin/order-review/:orderId/set-shipping" - Price an order awaiting review

COUPONS & OFFERS
- GET/POST/PUT/DELETE "/coupons" - Manage coupons
- POST "/coupons/generate-for-users" - Personal coupons by email
- GET/POST/PUT/DELETE "/admin/offers"

INVENTORY
- POST "/inventory/admin/adjust" - Audited stock adjustment
- GET "/inventory/admin/logs" - Adjustment ledger
- GET "/inventory/admin/summary" - Stock summary counts

REVIEWS, NOTIFICATIONS, NEWSLETTER, EMI, WISHLIST, REPORTS
- See the route files for the full surface.`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
