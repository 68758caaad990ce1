// Package submission records accepted forms after validation passed.
//
// A submission pairs a form's value snapshot with request metadata (client
// IP, user agent, referer) under a UUID. Stores never mutate recorded
// submissions; Record is insert-only and an ID collision fails with
// ErrDuplicateID.
//
// # Stores
//
// MemoryStore keeps submissions in a mutex-guarded map for single-process
// deployments and tests. PostgresStore persists them as JSONB rows on a pgx
// pool:
//
//	pool, err := submission.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := submission.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	store := submission.NewPostgresStore(pool)
//
// Schema migrations are embedded in the package and applied with goose, so a
// deployed binary always runs against the schema it was built for.
package submission
