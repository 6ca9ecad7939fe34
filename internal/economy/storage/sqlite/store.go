// Package sqlite provides the SQLite-backed economy storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	"github.com/louisbranch/infinity.spark/internal/economy/storage/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/infinity.spark/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

var _ storage.Transactor = (*Store)(nil)

// querier is satisfied by both *sql.DB and *sql.Tx so every store method
// works identically inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store persists economy state in SQLite.
type Store struct {
	sqlDB *sql.DB
	tx    *sql.Tx
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite economy store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) db() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.sqlDB
}

func (s *Store) withTx(tx *sql.Tx) *Store {
	if s == nil || tx == nil {
		return s
	}
	cloned := *s
	cloned.tx = tx
	return &cloned
}

// Transact runs fn against a transactional view of the store. A non-nil
// error from fn rolls every write back.
func (s *Store) Transact(ctx context.Context, fn func(storage.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if s.tx != nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(s.withTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PutWallet upserts a wallet's balances.
func (s *Store) PutWallet(ctx context.Context, wallet domain.Wallet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	address := strings.TrimSpace(wallet.Address)
	if address == "" {
		return fmt.Errorf("wallet address is required")
	}

	_, err := s.db().ExecContext(
		ctx,
		`INSERT INTO wallets (address, balance, infinity_balance, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(address) DO UPDATE SET
		   balance = excluded.balance,
		   infinity_balance = excluded.infinity_balance,
		   updated_at = excluded.updated_at`,
		address,
		wallet.Balance,
		wallet.InfinityBalance,
		toMillis(wallet.CreatedAt),
		toMillis(wallet.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put wallet: %w", err)
	}
	return nil
}

// GetWallet returns one wallet by address.
func (s *Store) GetWallet(ctx context.Context, address string) (domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return domain.Wallet{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Wallet{}, fmt.Errorf("storage is not configured")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Wallet{}, fmt.Errorf("wallet address is required")
	}

	row := s.db().QueryRowContext(
		ctx,
		`SELECT address, balance, infinity_balance, created_at, updated_at
		 FROM wallets WHERE address = ?`,
		address,
	)
	var wallet domain.Wallet
	var createdAt, updatedAt int64
	if err := row.Scan(&wallet.Address, &wallet.Balance, &wallet.InfinityBalance, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Wallet{}, storage.ErrNotFound
		}
		return domain.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	wallet.CreatedAt = fromMillis(createdAt)
	wallet.UpdatedAt = fromMillis(updatedAt)
	return wallet, nil
}

// ListWallets returns every wallet ordered by address.
func (s *Store) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.db().QueryContext(
		ctx,
		`SELECT address, balance, infinity_balance, created_at, updated_at
		 FROM wallets ORDER BY address`,
	)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var wallet domain.Wallet
		var createdAt, updatedAt int64
		if err := rows.Scan(&wallet.Address, &wallet.Balance, &wallet.InfinityBalance, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallet.CreatedAt = fromMillis(createdAt)
		wallet.UpdatedAt = fromMillis(updatedAt)
		wallets = append(wallets, wallet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return wallets, nil
}

// pageRecord is the JSON column shape for one world page.
type pageRecord struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tools     []string `json:"tools,omitempty"`
	CreatedAt int64    `json:"created_at"`
}

// collaboratorRecord is the JSON column shape for one collaborator.
type collaboratorRecord struct {
	WalletAddress string `json:"wallet_address"`
	Role          string `json:"role"`
	AddedAt       int64  `json:"added_at"`
	AddedBy       string `json:"added_by,omitempty"`
}

// slotRecord is the JSON column shape for slot provenance.
type slotRecord struct {
	Symbols          [3]string `json:"symbols"`
	RarityMultiplier float64   `json:"rarity_multiplier"`
	CombinationName  string    `json:"combination_name"`
}

func encodeWorldColumns(world domain.World) (tools, pages, collaborators string, slot sql.NullString, err error) {
	toolsJSON, err := json.Marshal(append([]string{}, world.Tools...))
	if err != nil {
		return "", "", "", sql.NullString{}, fmt.Errorf("encode tools: %w", err)
	}

	pageRecords := make([]pageRecord, 0, len(world.Pages))
	for _, page := range world.Pages {
		pageRecords = append(pageRecords, pageRecord{
			ID:        page.ID,
			Title:     page.Title,
			Content:   page.Content,
			Tools:     page.Tools,
			CreatedAt: toMillis(page.CreatedAt),
		})
	}
	pagesJSON, err := json.Marshal(pageRecords)
	if err != nil {
		return "", "", "", sql.NullString{}, fmt.Errorf("encode pages: %w", err)
	}

	collaboratorRecords := make([]collaboratorRecord, 0, len(world.Collaborators))
	for _, c := range world.Collaborators {
		collaboratorRecords = append(collaboratorRecords, collaboratorRecord{
			WalletAddress: c.WalletAddress,
			Role:          string(c.Role),
			AddedAt:       toMillis(c.AddedAt),
			AddedBy:       c.AddedBy,
		})
	}
	collaboratorsJSON, err := json.Marshal(collaboratorRecords)
	if err != nil {
		return "", "", "", sql.NullString{}, fmt.Errorf("encode collaborators: %w", err)
	}

	if world.Slot != nil {
		slotJSON, err := json.Marshal(slotRecord{
			Symbols:          world.Slot.Symbols,
			RarityMultiplier: world.Slot.RarityMultiplier,
			CombinationName:  world.Slot.CombinationName,
		})
		if err != nil {
			return "", "", "", sql.NullString{}, fmt.Errorf("encode slot: %w", err)
		}
		slot = sql.NullString{String: string(slotJSON), Valid: true}
	}

	return string(toolsJSON), string(pagesJSON), string(collaboratorsJSON), slot, nil
}

func decodeWorldColumns(world *domain.World, tools, pages, collaborators string, slot sql.NullString) error {
	if err := json.Unmarshal([]byte(tools), &world.Tools); err != nil {
		return fmt.Errorf("decode tools: %w", err)
	}

	var pageRecords []pageRecord
	if err := json.Unmarshal([]byte(pages), &pageRecords); err != nil {
		return fmt.Errorf("decode pages: %w", err)
	}
	world.Pages = make([]domain.Page, 0, len(pageRecords))
	for _, record := range pageRecords {
		world.Pages = append(world.Pages, domain.Page{
			ID:        record.ID,
			Title:     record.Title,
			Content:   record.Content,
			Tools:     record.Tools,
			CreatedAt: fromMillis(record.CreatedAt),
		})
	}

	var collaboratorRecords []collaboratorRecord
	if err := json.Unmarshal([]byte(collaborators), &collaboratorRecords); err != nil {
		return fmt.Errorf("decode collaborators: %w", err)
	}
	world.Collaborators = make([]domain.Collaborator, 0, len(collaboratorRecords))
	for _, record := range collaboratorRecords {
		world.Collaborators = append(world.Collaborators, domain.Collaborator{
			WalletAddress: record.WalletAddress,
			Role:          domain.Role(record.Role),
			AddedAt:       fromMillis(record.AddedAt),
			AddedBy:       record.AddedBy,
		})
	}

	if slot.Valid {
		var record slotRecord
		if err := json.Unmarshal([]byte(slot.String), &record); err != nil {
			return fmt.Errorf("decode slot: %w", err)
		}
		world.Slot = &domain.SlotProvenance{
			Symbols:          record.Symbols,
			RarityMultiplier: record.RarityMultiplier,
			CombinationName:  record.CombinationName,
		}
	}
	return nil
}

// PutWorld upserts a world with its embedded pages and collaborators.
func (s *Store) PutWorld(ctx context.Context, world domain.World) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(world.ID)
	if id == "" {
		return fmt.Errorf("world id is required")
	}

	tools, pages, collaborators, slot, err := encodeWorldColumns(world)
	if err != nil {
		return err
	}

	_, err = s.db().ExecContext(
		ctx,
		`INSERT INTO worlds (
		   id, title, description, query, content, url, archetype_id, emoji,
		   theme, owner_wallet, value, tools, pages, collaborators, for_sale,
		   sale_price, slot, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   description = excluded.description,
		   query = excluded.query,
		   content = excluded.content,
		   url = excluded.url,
		   archetype_id = excluded.archetype_id,
		   emoji = excluded.emoji,
		   theme = excluded.theme,
		   owner_wallet = excluded.owner_wallet,
		   value = excluded.value,
		   tools = excluded.tools,
		   pages = excluded.pages,
		   collaborators = excluded.collaborators,
		   for_sale = excluded.for_sale,
		   sale_price = excluded.sale_price,
		   slot = excluded.slot,
		   updated_at = excluded.updated_at`,
		id,
		world.Title,
		world.Description,
		world.Query,
		world.Content,
		world.URL,
		world.ArchetypeID,
		world.Emoji,
		world.Theme,
		world.OwnerWallet,
		world.Value,
		tools,
		pages,
		collaborators,
		boolToInt(world.ForSale),
		world.SalePrice,
		slot,
		toMillis(world.CreatedAt),
		toMillis(world.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put world: %w", err)
	}
	return nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

const worldColumns = `id, title, description, query, content, url, archetype_id, emoji,
	theme, owner_wallet, value, tools, pages, collaborators, for_sale,
	sale_price, slot, created_at, updated_at`

func scanWorld(scan func(dest ...any) error) (domain.World, error) {
	var world domain.World
	var tools, pages, collaborators string
	var slot sql.NullString
	var forSale int
	var createdAt, updatedAt int64
	err := scan(
		&world.ID,
		&world.Title,
		&world.Description,
		&world.Query,
		&world.Content,
		&world.URL,
		&world.ArchetypeID,
		&world.Emoji,
		&world.Theme,
		&world.OwnerWallet,
		&world.Value,
		&tools,
		&pages,
		&collaborators,
		&forSale,
		&world.SalePrice,
		&slot,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.World{}, err
	}
	if err := decodeWorldColumns(&world, tools, pages, collaborators, slot); err != nil {
		return domain.World{}, err
	}
	world.ForSale = forSale != 0
	world.CreatedAt = fromMillis(createdAt)
	world.UpdatedAt = fromMillis(updatedAt)
	return world, nil
}

// GetWorld returns one world by id.
func (s *Store) GetWorld(ctx context.Context, id string) (domain.World, error) {
	if err := ctx.Err(); err != nil {
		return domain.World{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.World{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.World{}, fmt.Errorf("world id is required")
	}

	row := s.db().QueryRowContext(
		ctx,
		`SELECT `+worldColumns+` FROM worlds WHERE id = ?`,
		id,
	)
	world, err := scanWorld(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.World{}, storage.ErrNotFound
		}
		return domain.World{}, fmt.Errorf("get world: %w", err)
	}
	return world, nil
}

func (s *Store) queryWorlds(ctx context.Context, query string, args ...any) ([]domain.World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query worlds: %w", err)
	}
	defer rows.Close()

	var worlds []domain.World
	for rows.Next() {
		world, err := scanWorld(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan world: %w", err)
		}
		worlds = append(worlds, world)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate worlds: %w", err)
	}
	return worlds, nil
}

// ListWorlds returns every world ordered by creation time.
func (s *Store) ListWorlds(ctx context.Context) ([]domain.World, error) {
	return s.queryWorlds(ctx, `SELECT `+worldColumns+` FROM worlds ORDER BY created_at, id`)
}

// ListWorldsByOwner returns the worlds owned by a wallet.
func (s *Store) ListWorldsByOwner(ctx context.Context, ownerWallet string) ([]domain.World, error) {
	ownerWallet = strings.TrimSpace(ownerWallet)
	if ownerWallet == "" {
		return nil, fmt.Errorf("owner wallet is required")
	}
	return s.queryWorlds(
		ctx,
		`SELECT `+worldColumns+` FROM worlds WHERE owner_wallet = ? ORDER BY created_at, id`,
		ownerWallet,
	)
}

// ListWorldsForSale returns every listed world, most recently updated first.
func (s *Store) ListWorldsForSale(ctx context.Context) ([]domain.World, error) {
	return s.queryWorlds(
		ctx,
		`SELECT `+worldColumns+` FROM worlds WHERE for_sale = 1 ORDER BY updated_at DESC, id`,
	)
}

// TopWorldsByValue returns the highest-valued worlds for the leaderboard.
func (s *Store) TopWorldsByValue(ctx context.Context, limit int) ([]domain.World, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryWorlds(
		ctx,
		`SELECT `+worldColumns+` FROM worlds ORDER BY value DESC, created_at, id LIMIT ?`,
		limit,
	)
}

// tokenMetadataRecord is the JSON column shape for token metadata.
type tokenMetadataRecord struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Query            string  `json:"query"`
	ToolCount        int     `json:"tool_count"`
	ArchetypeID      string  `json:"archetype_id,omitempty"`
	RarityMultiplier float64 `json:"rarity_multiplier,omitempty"`
}

// PutToken upserts one minted token.
func (s *Store) PutToken(ctx context.Context, token domain.Token) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(token.ID)
	if id == "" {
		return fmt.Errorf("token id is required")
	}

	metadataJSON, err := json.Marshal(tokenMetadataRecord{
		Title:            token.Metadata.Title,
		Description:      token.Metadata.Description,
		Query:            token.Metadata.Query,
		ToolCount:        token.Metadata.ToolCount,
		ArchetypeID:      token.Metadata.ArchetypeID,
		RarityMultiplier: token.Metadata.RarityMultiplier,
	})
	if err != nil {
		return fmt.Errorf("encode token metadata: %w", err)
	}

	_, err = s.db().ExecContext(
		ctx,
		`INSERT INTO tokens (id, wallet_address, world_id, value, metadata, acquired_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   wallet_address = excluded.wallet_address,
		   world_id = excluded.world_id,
		   value = excluded.value,
		   metadata = excluded.metadata`,
		id,
		token.WalletAddress,
		token.WorldID,
		token.Value,
		string(metadataJSON),
		toMillis(token.AcquiredAt),
	)
	if err != nil {
		return fmt.Errorf("put token: %w", err)
	}
	return nil
}

func (s *Store) queryTokens(ctx context.Context, query string, args ...any) ([]domain.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tokens: %w", err)
	}
	defer rows.Close()

	var tokens []domain.Token
	for rows.Next() {
		var token domain.Token
		var metadata string
		var acquiredAt int64
		if err := rows.Scan(&token.ID, &token.WalletAddress, &token.WorldID, &token.Value, &metadata, &acquiredAt); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		var record tokenMetadataRecord
		if err := json.Unmarshal([]byte(metadata), &record); err != nil {
			return nil, fmt.Errorf("decode token metadata: %w", err)
		}
		token.Metadata = domain.TokenMetadata{
			Title:            record.Title,
			Description:      record.Description,
			Query:            record.Query,
			ToolCount:        record.ToolCount,
			ArchetypeID:      record.ArchetypeID,
			RarityMultiplier: record.RarityMultiplier,
		}
		token.AcquiredAt = fromMillis(acquiredAt)
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tokens: %w", err)
	}
	return tokens, nil
}

const tokenColumns = `id, wallet_address, world_id, value, metadata, acquired_at`

// ListTokensByWallet returns every token held by a wallet.
func (s *Store) ListTokensByWallet(ctx context.Context, walletAddress string) ([]domain.Token, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, fmt.Errorf("wallet address is required")
	}
	return s.queryTokens(
		ctx,
		`SELECT `+tokenColumns+` FROM tokens WHERE wallet_address = ? ORDER BY acquired_at, id`,
		walletAddress,
	)
}

// ListTokensByWorld returns every token minted against a world.
func (s *Store) ListTokensByWorld(ctx context.Context, worldID string) ([]domain.Token, error) {
	worldID = strings.TrimSpace(worldID)
	if worldID == "" {
		return nil, fmt.Errorf("world id is required")
	}
	return s.queryTokens(
		ctx,
		`SELECT `+tokenColumns+` FROM tokens WHERE world_id = ? ORDER BY acquired_at, id`,
		worldID,
	)
}

// ListTokens returns every token in the economy.
func (s *Store) ListTokens(ctx context.Context) ([]domain.Token, error) {
	return s.queryTokens(ctx, `SELECT `+tokenColumns+` FROM tokens ORDER BY acquired_at, id`)
}

// AppendTransaction inserts one immutable log entry. Duplicate ids fail.
func (s *Store) AppendTransaction(ctx context.Context, tx domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(tx.ID)
	if id == "" {
		return fmt.Errorf("transaction id is required")
	}

	_, err := s.db().ExecContext(
		ctx,
		`INSERT INTO transactions (id, type, world_id, from_wallet, to_wallet, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		string(tx.Type),
		tx.WorldID,
		tx.From,
		tx.To,
		tx.Amount,
		toMillis(tx.CreatedAt),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var txType string
		var createdAt int64
		if err := rows.Scan(&tx.ID, &txType, &tx.WorldID, &tx.From, &tx.To, &tx.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Type = domain.TransactionType(txType)
		tx.CreatedAt = fromMillis(createdAt)
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

const transactionColumns = `id, type, world_id, from_wallet, to_wallet, amount, created_at`

// ListTransactions returns the newest log entries first. A non-positive
// limit returns the whole log.
func (s *Store) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		return s.queryTransactions(
			ctx,
			`SELECT `+transactionColumns+` FROM transactions ORDER BY created_at DESC, id`,
		)
	}
	return s.queryTransactions(
		ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
}

// ListTransactionsByWorld returns a world's log entries oldest first.
func (s *Store) ListTransactionsByWorld(ctx context.Context, worldID string) ([]domain.Transaction, error) {
	worldID = strings.TrimSpace(worldID)
	if worldID == "" {
		return nil, fmt.Errorf("world id is required")
	}
	return s.queryTransactions(
		ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE world_id = ? ORDER BY created_at, id`,
		worldID,
	)
}
