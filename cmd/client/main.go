package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"goblog/internal/client"
)

// Консольный клиент API блога. Сессия живёт в пределах одного запуска,
// поэтому команды записи принимают имя и пароль и логинятся сами.
func main() {
	serverURL := os.Getenv("GOBLOG_URL")
	if serverURL == "" {
		serverURL = "http://localhost:4000"
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	api, err := client.New(serverURL, client.Options{})
	if err != nil {
		log.Fatalf("Ошибка создания клиента: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "register":
		runRegister(ctx, api, os.Args[2:])
	case "posts":
		runPosts(ctx, api)
	case "post":
		runPost(ctx, api, os.Args[2:])
	case "publish":
		runPublish(ctx, api, os.Args[2:])
	case "edit":
		runEdit(ctx, api, os.Args[2:])
	case "profile":
		runProfile(ctx, api, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Использование: goblog-client <команда> [флаги]

Команды:
  register -user -pass              регистрация
  posts                             последние посты
  post -id                          пост по идентификатору
  publish -user -pass -title -summary -content [-file]   создать пост
  edit -user -pass -id -title -summary -content [-file]  отредактировать пост
  profile -user -pass               данные токена сессии

Адрес сервера берётся из GOBLOG_URL (по умолчанию http://localhost:4000)`)
}

func credentials(fs *flag.FlagSet) (user, pass *string) {
	user = fs.String("user", "", "имя пользователя")
	pass = fs.String("pass", "", "пароль")
	return user, pass
}

func login(ctx context.Context, api *client.Client, user, pass string) {
	if user == "" || pass == "" {
		log.Fatal("Нужны -user и -pass")
	}
	if _, err := api.Login(ctx, user, pass); err != nil {
		log.Fatalf("Ошибка входа: %v", err)
	}
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Ошибка вывода: %v", err)
	}
	fmt.Println(string(data))
}

func runRegister(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	user, pass := credentials(fs)
	fs.Parse(args)

	info, err := api.Register(ctx, *user, *pass)
	if err != nil {
		log.Fatalf("Ошибка регистрации: %v", err)
	}
	printJSON(info)
}

func runPosts(ctx context.Context, api *client.Client) {
	posts, err := api.RecentPosts(ctx)
	if err != nil {
		log.Fatalf("Ошибка получения постов: %v", err)
	}
	printJSON(posts)
}

func runPost(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	id := fs.String("id", "", "идентификатор поста")
	fs.Parse(args)

	if *id == "" {
		log.Fatal("Нужен -id")
	}

	post, err := api.Post(ctx, *id)
	if err != nil {
		log.Fatalf("Ошибка получения поста: %v", err)
	}
	printJSON(post)
}

func draftFlags(fs *flag.FlagSet) (title, summary, content, file *string) {
	title = fs.String("title", "", "заголовок")
	summary = fs.String("summary", "", "краткое описание")
	content = fs.String("content", "", "текст поста")
	file = fs.String("file", "", "путь к файлу обложки (необязательно)")
	return
}

func buildDraft(title, summary, content, file string) client.PostDraft {
	draft := client.PostDraft{
		Title:   title,
		Summary: summary,
		Content: content,
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			log.Fatalf("Ошибка открытия файла: %v", err)
		}
		draft.File = f
		draft.FileName = filepath.Base(file)
	}

	return draft
}

func runPublish(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	user, pass := credentials(fs)
	title, summary, content, file := draftFlags(fs)
	fs.Parse(args)

	login(ctx, api, *user, *pass)

	post, err := api.CreatePost(ctx, buildDraft(*title, *summary, *content, *file))
	if err != nil {
		log.Fatalf("Ошибка создания поста: %v", err)
	}
	printJSON(post)
}

func runEdit(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	user, pass := credentials(fs)
	id := fs.String("id", "", "идентификатор поста")
	title, summary, content, file := draftFlags(fs)
	fs.Parse(args)

	if *id == "" {
		log.Fatal("Нужен -id")
	}

	login(ctx, api, *user, *pass)

	post, err := api.EditPost(ctx, *id, buildDraft(*title, *summary, *content, *file))
	if err != nil {
		log.Fatalf("Ошибка редактирования поста: %v", err)
	}
	printJSON(post)
}

func runProfile(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	user, pass := credentials(fs)
	fs.Parse(args)

	login(ctx, api, *user, *pass)

	claims, err := api.Profile(ctx)
	if err != nil {
		log.Fatalf("Ошибка получения профиля: %v", err)
	}
	printJSON(claims)
}
