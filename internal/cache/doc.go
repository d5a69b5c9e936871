// Package cache memoizes expensive derived values, such as the resized
// rasters of one export run.
//
//	c := cache.New[int, *image.NRGBA](0)
//	img, err := c.GetOrCreate(512, func() (*image.NRGBA, error) {
//	    return resize(master, 512)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
