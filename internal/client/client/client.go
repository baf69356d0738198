package client

import (
	"context"

	pb "github.com/dmitrijs2005/hexplay/internal/proto"
)

// Client is the set of remote operations the CLI needs.
type Client interface {
	Close() error
	Status(ctx context.Context, question string) (string, error)
	CreateUser(ctx context.Context, name, email string, age *int32) (*pb.User, error)
	GetUser(ctx context.Context, id int64) (*pb.User, error)
	GetUserByToken(ctx context.Context, token string) (*pb.User, error)
	GetUserByEmail(ctx context.Context, email string) (*pb.User, error)
	ListUsers(ctx context.Context, startID int64, pageSize *int32) ([]*pb.User, error)
	UpdateUser(ctx context.Context, id, version int64, name *string, age *int32) (*pb.User, error)
	DeleteUser(ctx context.Context, id, version int64) (*pb.User, error)
}
