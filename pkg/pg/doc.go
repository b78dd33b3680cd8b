// Package pg connects to PostgreSQL through a pgx pool and applies goose
// migrations.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.MigrateFS(ctx, pool, catalog.Migrations, catalog.MigrationsDir, cfg, log); err != nil {
//		return err
//	}
//
// Migrate reads migrations from cfg.MigrationsPath on disk, while MigrateFS
// reads them from an fs.FS such as an embedded directory. Goose keeps global
// state, so concurrent migrations are serialized.
package pg
