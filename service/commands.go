package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inkpress/app/config"
	"inkpress/app/repositories"
	"inkpress/app/services"
)

// HandleCommand runs a subcommand and returns its exit code.
func HandleCommand(args []string) int {
	if len(args) < 1 {
		PrintHelp()
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		return RunAppServer(args[1:])
	case "db":
		return handleDB(args[1:])
	case "comments":
		return handleComments(args[1:])
	case "help":
		PrintHelp()
		return 0
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		PrintHelp()
		return 1
	}
}

// PrintHelp prints help for the subcommands.
func PrintHelp() {
	helpText := `Usage: inkpress <command> [options]

Commands:
  help                                   Display this help message
  version                                Show version information
  serve [--config <file>]                Run the blog API server
  db init [--config <file>]              Initialize a new empty database
  db clean [--config <file>] [--yes]     Remove all stored data
  db backup [--config <file>]            Create a backup of every collection
  db restore [--config <file>] [--yes] <file>
                                         Restore collections from a backup
  db seed [--config <file>]              Add the sample posts to an empty database
  comments pending [--config <file>]     List comments awaiting approval
  comments approve [--config <file>] <id>
                                         Approve a comment
`
	fmt.Println(helpText)
}

func handleDB(args []string) int {
	if len(args) < 1 {
		fmt.Println("Error: db requires a subcommand")
		PrintHelp()
		return 1
	}

	flags := newCommandFlags("db " + args[0])
	cfg, err := flags.parse(args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	switch args[0] {
	case "init":
		return initDb(cfg)
	case "clean":
		return clean(cfg, flags.yes)
	case "backup":
		return backup(cfg)
	case "restore":
		if flags.set.NArg() < 1 {
			fmt.Println("Error: backup file path required for restore")
			return 1
		}
		return restore(cfg, flags.set.Arg(0), flags.yes)
	case "seed":
		return seed(cfg)
	default:
		fmt.Printf("Unknown db command: %s\n\n", args[0])
		PrintHelp()
		return 1
	}
}

// initDb initializes a new empty database.
func initDb(cfg *config.Config) int {
	exists, err := storeExists(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to inspect database: %v\n", err)
		return 1
	}
	if exists {
		fmt.Println("Database already exists. Use 'db clean' first if you want to reinitialize.")
		return 0
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return 1
	}
	defer store.Close()

	fmt.Printf("Database initialized successfully (%s backend at %s)\n", cfg.Storage.Backend, cfg.Storage.Path())
	return 0
}

// clean removes all stored data.
func clean(cfg *config.Config, yes bool) int {
	exists, err := storeExists(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to inspect database: %v\n", err)
		return 1
	}
	if !exists {
		fmt.Println("Database is already clean (does not exist)")
		return 0
	}

	if !yes && !confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Println("Operation cancelled")
		return 0
	}

	if err := removeStore(cfg.Storage); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Println("Database cleaned successfully")
	return 0
}

// backup writes every collection into a timestamped file in the backup directory.
func backup(cfg *config.Config) int {
	exists, err := storeExists(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to inspect database: %v\n", err)
		return 1
	}
	if !exists {
		fmt.Println("No database exists to backup")
		return 1
	}

	backupDir := cfg.Storage.BackupDir()
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		return 1
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.json", time.Now().UnixNano()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Printf("Failed to create backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	count, err := repositories.Backup(store, f)
	if err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		return 1
	}

	fmt.Printf("Database backed up successfully to %s (%d collections)\n", backupFile, count)
	return 0
}

// restore replaces the stored data with the contents of a backup file.
func restore(cfg *config.Config, backupFile string, yes bool) int {
	fi, err := os.Stat(backupFile)
	if os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if err != nil {
		fmt.Printf("Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Printf("Backup file is empty: %s\n", backupFile)
		return 1
	}

	exists, err := storeExists(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to inspect database: %v\n", err)
		return 1
	}
	if exists {
		if !yes && !confirm("Existing database found. Do you want to replace it?") {
			fmt.Println("Operation cancelled")
			return 1
		}
		if err := removeStore(cfg.Storage); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Printf("Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	names, err := repositories.Restore(store, f)
	if err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Printf("Database restored successfully (%d collections)\n", len(names))
	return 0
}

// seed writes the sample posts into an empty posts collection.
func seed(cfg *config.Config) int {
	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	repo := repositories.NewRepository(store)
	defer repo.Close()

	seeded, err := services.NewPostService(repositories.NewJSONPostRepository(repo)).SeedSamples()
	if err != nil {
		fmt.Printf("Failed to seed database: %v\n", err)
		return 1
	}
	if !seeded {
		fmt.Println("Posts already exist, nothing to seed")
		return 0
	}
	fmt.Println("Sample posts added")
	return 0
}

func handleComments(args []string) int {
	if len(args) < 1 {
		fmt.Println("Error: comments requires a subcommand")
		PrintHelp()
		return 1
	}

	flags := newCommandFlags("comments " + args[0])
	cfg, err := flags.parse(args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	repo := repositories.NewRepository(store)
	defer repo.Close()
	commentService := services.NewCommentService(repositories.NewJSONCommentRepository(repo))

	switch args[0] {
	case "pending":
		return listPending(commentService)
	case "approve":
		if flags.set.NArg() < 1 {
			fmt.Println("Error: comment id required for approve")
			return 1
		}
		return approve(commentService, flags.set.Arg(0))
	default:
		fmt.Printf("Unknown comments command: %s\n\n", args[0])
		PrintHelp()
		return 1
	}
}

func listPending(commentService *services.CommentService) int {
	comments, err := commentService.Pending()
	if err != nil {
		fmt.Printf("Failed to list comments: %v\n", err)
		return 1
	}
	if len(comments) == 0 {
		fmt.Println("No comments awaiting approval")
		return 0
	}
	for _, c := range comments {
		fmt.Printf("%s  post=%s  %s <%s>  %s\n    %s\n",
			c.ID, c.PostID, c.Author, c.Email, c.Date.Format(time.RFC3339), c.Content)
	}
	return 0
}

func approve(commentService *services.CommentService, id string) int {
	comment, err := commentService.Approve(id)
	if services.IsNotFound(err) {
		fmt.Printf("Comment not found: %s\n", id)
		return 1
	}
	if err != nil {
		fmt.Printf("Failed to approve comment: %v\n", err)
		return 1
	}
	fmt.Printf("Comment %s on post %s approved\n", comment.ID, comment.PostID)
	return 0
}
