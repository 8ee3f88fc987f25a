package main

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"katcheri/internal/config"
	"katcheri/internal/models"
	"katcheri/internal/services"
	"katcheri/internal/utils"
)

// stubState is the in-memory backing store for the development API. It is
// seeded from the sample datasets so the stub answers exactly like the
// production API would.
type stubState struct {
	mu sync.Mutex

	events []models.Event
	news   []models.NewsPost
	media  []models.MediaItem
	orders []models.Order
	carts  map[string]*models.Cart

	users      []models.User
	passwords  map[string]string
	nextID     int
	nextLineID int
}

type stubServer struct {
	state  *stubState
	secret []byte
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	adminHash, err := utils.HashPassword(cfg.Stub.AdminPassword)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	state := &stubState{
		events: services.SampleEvents(),
		news:   services.SampleNews(),
		media:  services.SampleMedia(),
		orders: services.SampleOrders(),
		carts:  make(map[string]*models.Cart),
		users: []models.User{{
			ID:    1,
			Email: cfg.Stub.AdminEmail,
			Role:  models.RoleAdmin,
		}},
		passwords:  map[string]string{cfg.Stub.AdminEmail: adminHash},
		nextID:     1000,
		nextLineID: 1,
	}

	server := &stubServer{state: state, secret: []byte(cfg.Stub.JWTSecret)}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/events", server.listEvents)
		api.GET("/events/:slug", server.getEvent)
		api.GET("/news", server.listNews)
		api.GET("/news/:slug", server.getNewsPost)
		api.GET("/media", server.listMedia)

		api.GET("/cart", server.getCart)
		api.POST("/cart", server.addToCart)
		api.DELETE("/cart/:id", server.removeCartItem)
		api.POST("/orders/checkout", server.checkout)
		api.GET("/orders", server.listOrders)

		api.POST("/auth/login", server.login)
		api.POST("/auth/register", server.register)
		api.GET("/auth/me", server.requireAuth(), server.me)
	}

	admin := api.Group("/admin", server.requireAuth(), server.requireAdmin())
	{
		admin.POST("/events", server.createEvent)
		admin.PATCH("/events/:id", server.patchEventStatus)
		admin.POST("/news", server.createNewsPost)
		admin.PATCH("/news/:id", server.patchNewsStatus)
		admin.POST("/media", server.createMedia)
		admin.DELETE("/media/:id", server.deleteMedia)
		admin.PATCH("/media/:id", server.patchMediaFeatured)
		admin.GET("/orders", server.listAdminOrders)
		admin.PATCH("/orders/:id", server.patchOrderStatus)
		admin.POST("/orders/:id/resend", server.resendOrderEmail)
		admin.GET("/stats", server.stats)
	}

	log.Printf("Stub API listening on :%s (admin: %s)", cfg.Stub.Port, cfg.Stub.AdminEmail)
	if err := router.Run(":" + cfg.Stub.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ---- public content ----

func (s *stubServer) listEvents(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(models.DefaultPerPage)))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = models.DefaultPerPage
	}

	q := strings.ToLower(c.Query("q"))
	venue := strings.ToLower(c.Query("venue"))

	var filtered []models.Event
	for _, event := range s.state.events {
		if event.Status != models.StatusPublished {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(event.Title), q) &&
			!strings.Contains(strings.ToLower(event.Description), q) {
			continue
		}
		if venue != "" && !strings.Contains(strings.ToLower(event.Venue), venue) {
			continue
		}
		filtered = append(filtered, event)
	}

	start := (page - 1) * perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}

	c.JSON(http.StatusOK, gin.H{
		"events":     filtered[start:end],
		"pagination": models.NewPagination(page, perPage, len(filtered)),
	})
}

func (s *stubServer) getEvent(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	slug := c.Param("slug")
	for _, event := range s.state.events {
		if event.Slug == slug {
			c.JSON(http.StatusOK, event)
			return
		}
	}
	fail(c, http.StatusNotFound, "event not found")
}

func (s *stubServer) listNews(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	var published []models.NewsPost
	for _, post := range s.state.news {
		if post.Status == models.NewsPublished {
			published = append(published, post)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      published,
		"pagination": models.NewPagination(page, models.DefaultPerPage, len(published)),
	})
}

func (s *stubServer) getNewsPost(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	slug := c.Param("slug")
	for _, post := range s.state.news {
		if post.Slug == slug {
			c.JSON(http.StatusOK, post)
			return
		}
	}
	fail(c, http.StatusNotFound, "news post not found")
}

func (s *stubServer) listMedia(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	tag := c.Query("tag")
	if tag == "" {
		c.JSON(http.StatusOK, s.state.media)
		return
	}

	filtered := make([]models.MediaItem, 0)
	for _, item := range s.state.media {
		if item.HasTag(tag) {
			filtered = append(filtered, item)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

// ---- cart and orders ----

// cartFor returns the cart bound to the caller's session header, creating
// it on first touch. Callers hold state.mu.
func (s *stubServer) cartFor(c *gin.Context) *models.Cart {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID = "anonymous"
	}
	cart, ok := s.state.carts[sessionID]
	if !ok {
		cart = &models.Cart{}
		s.state.carts[sessionID] = cart
	}
	return cart
}

func (s *stubServer) getCart(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	c.JSON(http.StatusOK, s.cartFor(c))
}

func (s *stubServer) addToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var event *models.Event
	for i := range s.state.events {
		if s.state.events[i].ID == req.EventID {
			event = &s.state.events[i]
			break
		}
	}
	if event == nil {
		fail(c, http.StatusNotFound, "event not found")
		return
	}
	ticketType := event.TicketType(req.TicketTypeID)
	if ticketType == nil {
		fail(c, http.StatusNotFound, "ticket type not found")
		return
	}
	if !ticketType.IsAvailable {
		fail(c, http.StatusConflict, "ticket type not available")
		return
	}

	cart := s.cartFor(c)
	merged := req.Quantity
	if line := cart.ItemByTicketType(req.TicketTypeID); line != nil {
		merged += line.Quantity
	}
	if merged > ticketType.QuantityAvailable {
		fail(c, http.StatusConflict, "not enough tickets available")
		return
	}

	if line := cart.ItemByTicketType(req.TicketTypeID); line != nil {
		line.Quantity = merged
		line.UnitPrice = ticketType.Price
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ID:           s.state.nextLineID,
			TicketTypeID: req.TicketTypeID,
			EventID:      req.EventID,
			EventTitle:   event.Title,
			TicketName:   ticketType.Name,
			Quantity:     req.Quantity,
			UnitPrice:    ticketType.Price,
		})
		s.state.nextLineID++
	}
	cart.Recalculate()

	c.JSON(http.StatusOK, cart)
}

func (s *stubServer) removeCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid cart item id")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	cart := s.cartFor(c)
	for i := range cart.Items {
		if cart.Items[i].ID == id {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.Recalculate()
			c.JSON(http.StatusOK, cart)
			return
		}
	}
	fail(c, http.StatusNotFound, "cart item not found")
}

func (s *stubServer) checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	cart := s.cartFor(c)
	if cart.IsEmpty() {
		fail(c, http.StatusBadRequest, "cart is empty")
		return
	}

	name := strings.TrimSpace(req.HolderName)
	if name == "" {
		if at := strings.IndexByte(req.Email, '@'); at > 0 {
			name = req.Email[:at]
		} else {
			name = req.Email
		}
	}

	now := time.Now()
	s.state.nextID++
	order := models.Order{
		ID:          s.state.nextID,
		OrderNumber: "KAT-" + strconv.Itoa(now.Year()) + "-" + padOrderNumber(s.state.nextID),
		Status:      models.OrderPending,
		Total:       cart.Subtotal,
		PlacedAt:    now,
		Customer:    models.Customer{Name: name, Email: req.Email},
	}
	for _, line := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:         line.ID,
			EventTitle: line.EventTitle,
			TicketType: line.TicketName,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		})
	}

	s.state.orders = append(s.state.orders, order)
	*cart = models.Cart{}

	c.JSON(http.StatusCreated, order)
}

func padOrderNumber(id int) string {
	n := strconv.Itoa(id % 10000)
	for len(n) < 4 {
		n = "0" + n
	}
	return n
}

func (s *stubServer) listOrders(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	c.JSON(http.StatusOK, s.state.orders)
}

// ---- auth ----

func (s *stubServer) mintTokens(user models.User) (string, string, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.Itoa(user.ID),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	accessToken, err := access.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     strconv.Itoa(user.ID),
		"refresh": true,
		"iat":     now.Unix(),
		"exp":     now.Add(30 * 24 * time.Hour).Unix(),
	})
	refreshToken, err := refresh.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *stubServer) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	hash, ok := s.state.passwords[req.Email]
	if !ok {
		fail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	match, err := utils.VerifyPassword(req.Password, hash)
	if err != nil || !match {
		fail(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	var user models.User
	for _, u := range s.state.users {
		if u.Email == req.Email {
			user = u
			break
		}
	}

	accessToken, refreshToken, err := s.mintTokens(user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to issue tokens")
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (s *stubServer) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := s.state.passwords[req.Email]; exists {
		fail(c, http.StatusConflict, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to store credentials")
		return
	}

	s.state.nextID++
	user := models.User{
		ID:        s.state.nextID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleUser,
	}
	s.state.users = append(s.state.users, user)
	s.state.passwords[req.Email] = hash

	accessToken, refreshToken, err := s.mintTokens(user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to issue tokens")
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (s *stubServer) me(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (s *stubServer) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			fail(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			fail(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			fail(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)

		s.state.mu.Lock()
		var user models.User
		found := false
		for _, u := range s.state.users {
			if u.Email == email {
				user = u
				found = true
				break
			}
		}
		s.state.mu.Unlock()

		if !found {
			fail(c, http.StatusUnauthorized, "unknown user")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func (s *stubServer) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(models.User)
		if !user.IsAdmin() {
			fail(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ---- admin writes ----

func (s *stubServer) createEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if event.ID == 0 {
		s.state.nextID++
		event.ID = s.state.nextID
	}
	if event.Slug == "" {
		event.Slug = utils.Slugify(event.Title)
	}
	if event.Status == "" {
		event.Status = models.StatusDraft
	}
	if err := event.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	for i := range s.state.events {
		if s.state.events[i].ID == event.ID {
			s.state.events[i] = event
			c.JSON(http.StatusOK, event)
			return
		}
	}
	s.state.events = append(s.state.events, event)
	c.JSON(http.StatusCreated, event)
}

func (s *stubServer) patchEventStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status models.EventStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.events {
		if s.state.events[i].ID == id {
			s.state.events[i].Status = body.Status
			c.JSON(http.StatusOK, s.state.events[i])
			return
		}
	}
	fail(c, http.StatusNotFound, "event not found")
}

func (s *stubServer) createNewsPost(c *gin.Context) {
	var post models.NewsPost
	if err := c.ShouldBindJSON(&post); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if post.ID == 0 {
		s.state.nextID++
		post.ID = s.state.nextID
	}
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	if post.Status == "" {
		post.Status = models.NewsDraft
	}
	if post.Status == models.NewsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := post.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	for i := range s.state.news {
		if s.state.news[i].ID == post.ID {
			s.state.news[i] = post
			c.JSON(http.StatusOK, post)
			return
		}
	}
	s.state.news = append(s.state.news, post)
	c.JSON(http.StatusCreated, post)
}

func (s *stubServer) patchNewsStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status models.NewsStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.news {
		if s.state.news[i].ID == id {
			s.state.news[i].Status = body.Status
			if body.Status == models.NewsPublished {
				now := time.Now()
				s.state.news[i].PublishedAt = &now
			} else {
				s.state.news[i].PublishedAt = nil
			}
			c.JSON(http.StatusOK, s.state.news[i])
			return
		}
	}
	fail(c, http.StatusNotFound, "news post not found")
}

func (s *stubServer) createMedia(c *gin.Context) {
	var item models.MediaItem
	if err := c.ShouldBindJSON(&item); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if item.ID == 0 {
		s.state.nextID++
		item.ID = s.state.nextID
	}
	if item.UploadedAt.IsZero() {
		item.UploadedAt = time.Now()
	}
	if err := item.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.state.media = append(s.state.media, item)
	c.JSON(http.StatusCreated, item)
}

func (s *stubServer) deleteMedia(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.media {
		if s.state.media[i].ID == id {
			s.state.media = append(s.state.media[:i], s.state.media[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	fail(c, http.StatusNotFound, "media item not found")
}

func (s *stubServer) patchMediaFeatured(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Featured bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.media {
		if s.state.media[i].ID == id {
			s.state.media[i].Featured = body.Featured
			c.JSON(http.StatusOK, s.state.media[i])
			return
		}
	}
	fail(c, http.StatusNotFound, "media item not found")
}

func (s *stubServer) listAdminOrders(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	c.JSON(http.StatusOK, s.state.orders)
}

func (s *stubServer) patchOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.orders {
		if s.state.orders[i].ID == id {
			if !models.CanTransition(s.state.orders[i].Status, body.Status) {
				fail(c, http.StatusConflict, "invalid order status transition")
				return
			}
			s.state.orders[i].Status = body.Status
			c.JSON(http.StatusOK, s.state.orders[i])
			return
		}
	}
	fail(c, http.StatusNotFound, "order not found")
}

func (s *stubServer) resendOrderEmail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for _, order := range s.state.orders {
		if order.ID == id {
			log.Printf("Resending confirmation for %s to %s", order.OrderNumber, order.Customer.Email)
			c.JSON(http.StatusOK, gin.H{"message": "confirmation email resent"})
			return
		}
	}
	fail(c, http.StatusNotFound, "order not found")
}

func (s *stubServer) stats(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	stats := services.SampleStats()

	stats.Orders.Total = len(s.state.orders)
	var revenue float64
	recent := 0
	cutoff := time.Now().AddDate(0, 0, -30)
	for _, order := range s.state.orders {
		if order.Status != models.OrderRefunded {
			revenue += order.Total
		}
		if order.PlacedAt.After(cutoff) {
			recent++
		}
	}
	stats.Orders.Recent30Days = recent
	stats.Revenue.Total = revenue

	stats.Events.Total = len(s.state.events)
	published := 0
	for _, event := range s.state.events {
		if event.Status == models.StatusPublished {
			published++
		}
	}
	stats.Events.Published = published

	stats.News.Total = len(s.state.news)
	published = 0
	for _, post := range s.state.news {
		if post.Status == models.NewsPublished {
			published++
		}
	}
	stats.News.Published = published

	stats.Users.Total = len(s.state.users)

	c.JSON(http.StatusOK, stats)
}
