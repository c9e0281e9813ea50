package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"thehook-backend/internal/models"
	"thehook-backend/internal/store"
)

// seedCatalog is the curated launch menu. Names act as the dedup key, so
// renaming an entry here re-inserts it under the new name on the next seed.
var seedCatalog = []models.MenuItem{
	{Name: "Paneer Tikka", Category: "Starters", Description: "Char-grilled cottage cheese with mint chutney", Price: 239, Veg: true},
	{Name: "Chicken 65", Category: "Starters", Description: "South-style fried chicken, curry leaf tempered", Price: 259, Veg: false},
	{Name: "Veg Spring Rolls", Category: "Starters", Price: 179, Veg: true},
	{Name: "Butter Chicken", Category: "Mains", Description: "Tandoori chicken simmered in tomato-butter gravy", Price: 299, Veg: false},
	{Name: "Paneer Butter Masala", Category: "Mains", Price: 269, Veg: true},
	{Name: "Dal Makhani", Category: "Mains", Description: "Black lentils slow-cooked overnight", Price: 219, Veg: true},
	{Name: "Chicken Biryani", Category: "Mains", Price: 289, Veg: false},
	{Name: "Butter Naan", Category: "Breads", Price: 49, Veg: true},
	{Name: "Garlic Naan", Category: "Breads", Price: 59, Veg: true},
	{Name: "Tandoori Roti", Category: "Breads", Price: 29, Veg: true},
	{Name: "Gulab Jamun", Category: "Desserts", Description: "Two pieces, served warm", Price: 99, Veg: true},
	{Name: "Masala Chaas", Category: "Beverages", Price: 59, Veg: true},
}

// SeedMenu bulk-loads the curated catalog, skipping any name that already
// exists. Safe to run repeatedly: a partial failure resumes on retry because
// already-inserted names land in the skipped list. Not transactional across
// items.
func SeedMenu(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/seed_menu"
		defer handlePanic(c, route)

		ctx, cancel := storeContext(c)
		defer cancel()

		created := make([]models.MenuItem, 0, len(seedCatalog))
		skipped := make([]string, 0, len(seedCatalog))

		for _, candidate := range seedCatalog {
			existing := make([]models.MenuItem, 0, 1)
			if err := st.Find(ctx, store.MenuItems, bson.M{"name": candidate.Name}, 1, &existing); err != nil {
				respondStoreError(c, route, err)
				return
			}
			if len(existing) > 0 {
				skipped = append(skipped, candidate.Name)
				continue
			}

			candidate.CreatedAt = time.Now().UTC()
			id, err := st.Insert(ctx, store.MenuItems, candidate)
			if err != nil {
				respondStoreError(c, route, err)
				return
			}
			candidate.ID = id
			created = append(created, candidate)
		}

		log.Printf("[%s] created=%d skipped=%d", route, len(created), len(skipped))
		c.JSON(http.StatusOK, gin.H{"created": created, "skipped": skipped})
	}
}
