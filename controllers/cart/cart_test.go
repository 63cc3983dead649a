package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/maurozn/storefront-api/models"
	"github.com/maurozn/storefront-api/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 {
	return &v
}

func testCatalog() *repository.InMemoryCatalogStore {
	return repository.NewInMemoryCatalogStore(
		models.Product{ID: 1, Name: "T-Shirt", Description: "100% cotton", Price: price(19.99)},
		models.Product{ID: 2, Name: "Mug", Description: "Ceramic, 350ml", Price: price(9.99)},
	)
}

func newTestRouter(catalog repository.CatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("storefront_session", cookie.NewStore([]byte("test-secret"))))
	r.GET("/add-to-cart/:product_id", AddToCart())
	r.GET("/remove-from-cart/:product_id", RemoveFromCart())
	r.GET("/cart", ViewCart(catalog))
	return r
}

// browser replays session cookies across requests like a real client.
type browser struct {
	r       *gin.Engine
	cookies []*http.Cookie
}

func (b *browser) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)
	if cs := w.Result().Cookies(); len(cs) > 0 {
		b.cookies = cs
	}
	return w
}

type cartView struct {
	Products []models.Product `json:"products"`
	Total    float64          `json:"total"`
}

func (b *browser) viewCart(t *testing.T) cartView {
	t.Helper()
	w := b.get(t, "/cart")
	require.Equal(t, http.StatusOK, w.Code)

	var view cartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	return view
}

func TestAddSameProductTwiceYieldsSizeOne(t *testing.T) {
	b := &browser{r: newTestRouter(testCatalog())}

	b.get(t, "/add-to-cart/1")
	b.get(t, "/add-to-cart/1")

	view := b.viewCart(t)
	require.Len(t, view.Products, 1)
	assert.InDelta(t, 19.99, view.Total, 0.001)
}

func TestRemoveMissingProductLeavesCartUnchanged(t *testing.T) {
	b := &browser{r: newTestRouter(testCatalog())}
	b.get(t, "/add-to-cart/1")

	b.get(t, "/remove-from-cart/2")

	view := b.viewCart(t)
	require.Len(t, view.Products, 1)
	assert.Equal(t, uint(1), view.Products[0].ID)
}

func TestRemoveProductFromCart(t *testing.T) {
	b := &browser{r: newTestRouter(testCatalog())}
	b.get(t, "/add-to-cart/1")
	b.get(t, "/add-to-cart/2")

	w := b.get(t, "/remove-from-cart/1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	view := b.viewCart(t)
	require.Len(t, view.Products, 1)
	assert.Equal(t, uint(2), view.Products[0].ID)
}

func TestCartTotalExcludesUnknownIDs(t *testing.T) {
	b := &browser{r: newTestRouter(testCatalog())}

	b.get(t, "/add-to-cart/1")
	b.get(t, "/add-to-cart/2")
	b.get(t, "/add-to-cart/1")
	b.get(t, "/add-to-cart/99")

	view := b.viewCart(t)
	require.Len(t, view.Products, 2)
	assert.InDelta(t, 29.98, view.Total, 0.001)
}

func TestViewEmptyCart(t *testing.T) {
	b := &browser{r: newTestRouter(testCatalog())}

	view := b.viewCart(t)
	assert.Empty(t, view.Products)
	assert.Zero(t, view.Total)
}

func TestNilPriceCountsAsZero(t *testing.T) {
	catalog := repository.NewInMemoryCatalogStore(
		models.Product{ID: 1, Name: "T-Shirt", Description: "100% cotton", Price: price(19.99)},
		models.Product{ID: 3, Name: "Sticker", Description: "Vinyl, 5cm"},
	)
	b := &browser{r: newTestRouter(catalog)}

	b.get(t, "/add-to-cart/1")
	b.get(t, "/add-to-cart/3")

	view := b.viewCart(t)
	require.Len(t, view.Products, 2)
	assert.InDelta(t, 19.99, view.Total, 0.001)
}

func TestAddToCartRedirectsHome(t *testing.T) {
	b := &browser{r: newTestRouter(testCatalog())}

	w := b.get(t, "/add-to-cart/1")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAddToCartRejectsBadID(t *testing.T) {
	b := &browser{r: newTestRouter(testCatalog())}

	w := b.get(t, "/add-to-cart/abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
