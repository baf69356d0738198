package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hexplay/internal/common"
	pb "github.com/dmitrijs2005/hexplay/internal/proto"
	"github.com/dmitrijs2005/hexplay/internal/server/models"
	"github.com/dmitrijs2005/hexplay/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Create(ctx context.Context, req *pb.CreateUserRequest) (*pb.UserResponse, error) {

	user, err := s.users.Create(ctx, services.CreateUser{Name: req.Name, Email: req.Email, Age: intPtr(req.Age)})
	if err != nil {
		return nil, s.toStatus(ctx, "Create", err)
	}

	s.logger.Info(ctx, "User created", "id", user.ID)
	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) Get(ctx context.Context, req *pb.GetUserRequest) (*pb.UserResponse, error) {

	user, err := s.users.Get(ctx, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, "Get", err)
	}

	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) GetByToken(ctx context.Context, req *pb.GetUserByTokenRequest) (*pb.UserResponse, error) {

	user, err := s.users.GetByToken(ctx, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, "GetByToken", err)
	}

	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) GetByEmail(ctx context.Context, req *pb.GetUserByEmailRequest) (*pb.UserResponse, error) {

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.toStatus(ctx, "GetByEmail", err)
	}

	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) Update(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UserResponse, error) {

	in := services.UpdateUser{Name: req.Name, Email: req.Email, Age: intPtr(req.Age)}
	user, err := s.users.Update(ctx, req.Id, req.Version, in)
	if err != nil {
		return nil, s.toStatus(ctx, "Update", err)
	}

	s.logger.Info(ctx, "User updated", "id", user.ID, "version", user.Version)
	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteUserRequest) (*pb.UserResponse, error) {

	user, err := s.users.Delete(ctx, req.Id, req.Version)
	if err != nil {
		return nil, s.toStatus(ctx, "Delete", err)
	}

	s.logger.Info(ctx, "User deleted", "id", user.ID)
	return &pb.UserResponse{User: toProtoUser(user)}, nil
}

func (s *GRPCServer) List(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	pageSize := common.DefaultPageSize
	if req.PageSize != nil {
		pageSize = int(*req.PageSize)
	}

	list, err := s.users.List(ctx, req.StartId, pageSize)
	if err != nil {
		return nil, s.toStatus(ctx, "List", err)
	}

	resp := &pb.ListUsersResponse{Users: make([]*pb.User, 0, len(list))}
	for _, u := range list {
		resp.Users = append(resp.Users, toProtoUser(u))
	}
	return resp, nil
}

// Status answers a liveness question and fails with Unavailable when storage is down.
func (s *GRPCServer) Status(ctx context.Context, req *pb.StatusRequest) (*pb.StatusResponse, error) {

	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			s.logger.Warn(ctx, "Storage ping failed", "error", err.Error())
			return nil, status.Error(codes.Unavailable, "storage unavailable")
		}
	}

	return &pb.StatusResponse{Answer: fmt.Sprintf("%s: Answered", req.Question)}, nil
}

func toProtoUser(u *models.User) *pb.User {
	out := &pb.User{
		Id:        u.ID,
		Token:     u.Token.String(),
		Name:      u.Name,
		Email:     u.Email.String(),
		Version:   u.Version,
		CreatedAt: timestamppb.New(u.CreatedAt),
		UpdatedAt: timestamppb.New(u.UpdatedAt),
	}
	if u.Age != nil {
		a := int32(*u.Age)
		out.Age = &a
	}
	return out
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
