package apiservice

import (
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

var cachedb *cache.Cache

// initCache enables the response cache. A non positive ttl disables it.
func initCache(ttl time.Duration) {
	if ttl <= 0 {
		cachedb = nil
		return
	}
	cachedb = cache.New(ttl, 2*ttl)
}

func cacheStore(key string, value interface{}) error {
	if cachedb == nil {
		return nil
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	cachedb.SetDefault(key, string(v))
	return nil
}

func cacheGet(key string, value interface{}) error {
	if cachedb == nil {
		return errors.New("cache disabled")
	}
	v, ok := cachedb.Get(key)
	if !ok {
		return errors.New("item not exist")
	}
	return json.Unmarshal([]byte(v.(string)), value)
}
