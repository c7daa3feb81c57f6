package backend

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hackdeck/hackdeck/pkg/db/models"
)

// cache keeps recently resolved user profiles so roster builds do not
// hit the users table once per signal.
type cache struct {
	b     *Backend
	users *lru.Cache[int64, models.User]
}

func newCache(b *Backend, size int) *cache {
	if size <= 0 {
		size = 1
	}
	c := &cache{b: b}
	cache, _ := lru.New[int64, models.User](size)
	c.users = cache
	return c
}

func (c *cache) Get(id int64) (models.User, bool) {
	return c.users.Get(id)
}

func (c *cache) Set(u models.User) {
	c.users.Add(u.ID, u)
}

func (c *cache) Delete(id int64) {
	c.users.Remove(id)
}

func (c *cache) Len() int {
	return c.users.Len()
}
