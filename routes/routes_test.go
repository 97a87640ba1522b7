package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitcircle/internal/controllers"
	"fitcircle/internal/middleware"
	"fitcircle/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProtectedRoutesRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.AuthMiddleware("test-secret")
	logger := zap.NewNop()
	clock := controllers.NewClock(nil)

	// handlers are never reached without a token, so the services can be empty
	RegisterProfileRoutes(router, controllers.NewProfileController(services.NewProfileService(nil, nil, logger)), auth)
	RegisterProgressRoutes(router, controllers.NewProgressController(services.NewProgressService(nil, nil, logger), clock), auth)
	RegisterWorkoutRoutes(router, controllers.NewWorkoutController(nil, nil, clock), auth)
	RegisterMealRoutes(router, controllers.NewMealController(nil, nil, clock), auth)
	RegisterFamilyRoutes(router, controllers.NewFamilyController(nil, nil, nil, clock), auth)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile/preferences"},
		{http.MethodGet, "/progress"},
		{http.MethodPost, "/progress/steps"},
		{http.MethodPost, "/weight"},
		{http.MethodPost, "/workouts/log"},
		{http.MethodDelete, "/workouts/3f1b6c9e-0d52-4f7a-9a1e-5b7c2d8e4f10"},
		{http.MethodPost, "/meals/generate"},
		{http.MethodGet, "/family/view"},
		{http.MethodPost, "/family/join"},
		{http.MethodGet, "/family/challenges"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(p.method, p.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
