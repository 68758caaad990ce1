// Package draft persists partially filled forms so users can resume them
// later, before any validation has to pass.
//
// A draft is a token-keyed snapshot of a form's values with a retention
// window. Tokens are UUIDs generated by New; ValidateToken rejects malformed
// client input before it reaches a store.
//
// # Usage
//
//	store := draft.NewMemoryStore(5 * time.Minute)
//	defer store.Close()
//
//	d := draft.New(form.Fields.Values(), 24*time.Hour)
//	if err := store.Save(ctx, d); err != nil {
//		return err
//	}
//	// hand d.Token to the client, restore later:
//	d, err := store.Get(ctx, token)
//	if err != nil {
//		return err
//	}
//	if err := form.Fields.Apply(d.Values); err != nil {
//		return err
//	}
//
// # Stores
//
// MemoryStore keeps drafts in a mutex-guarded map with an optional cleanup
// goroutine for single-process deployments and tests. RedisStore rides on an
// existing go-redis client and delegates expiration to Redis key TTLs.
package draft
