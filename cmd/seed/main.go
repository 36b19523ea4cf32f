package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/AleksandrTrainich/yatube/config"
	"github.com/AleksandrTrainich/yatube/internal/model"
	"github.com/AleksandrTrainich/yatube/internal/repository"
	"github.com/AleksandrTrainich/yatube/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Seeds a local database with demo users, groups, posts and follow edges.
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	followRepo := repository.NewFollowRepository(db)
	ctx := context.Background()

	users := 50
	if s := os.Getenv("USERS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			users = n
		}
	}
	postsPerUser := 5
	if s := os.Getenv("POSTS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			postsPerUser = n
		}
	}

	groups := []model.Group{
		{Title: "Cats", Slug: "cats", Description: "Everything about cats"},
		{Title: "Travel", Slug: "travel", Description: "Trip reports"},
		{Title: "Cooking", Slug: "cooking", Description: "Recipes and kitchen talk"},
	}
	for i := range groups {
		_ = db.Where("slug = ?", groups[i].Slug).FirstOrCreate(&groups[i]).Error
	}

	seeded := make([]model.User, 0, users)
	for i := 0; i < users; i++ {
		u := model.User{Username: fmt.Sprintf("user%03d", i)}
		if err := db.Where("username = ?", u.Username).FirstOrCreate(&u).Error; err != nil {
			panic(err)
		}
		seeded = append(seeded, u)
	}

	for _, u := range seeded {
		for p := 0; p < postsPerUser; p++ {
			post := model.Post{
				Text:     fmt.Sprintf("post %d by %s", p, u.Username),
				AuthorID: u.ID,
			}
			if rand.Intn(2) == 0 {
				post.GroupID = &groups[rand.Intn(len(groups))].ID
			}
			if err := db.Create(&post).Error; err != nil {
				panic(err)
			}
		}
	}

	// everyone follows a handful of random authors; repeats and self-picks
	// are absorbed by the follow graph's invariants
	for _, u := range seeded {
		for k := 0; k < 5; k++ {
			target := seeded[rand.Intn(len(seeded))]
			if target.ID == u.ID {
				continue
			}
			if err := followRepo.Create(ctx, u.ID, target.ID); err != nil {
				panic(err)
			}
		}
	}

	fmt.Printf("seeded %d users, %d groups, %d posts\n", users, len(groups), users*postsPerUser)
}
