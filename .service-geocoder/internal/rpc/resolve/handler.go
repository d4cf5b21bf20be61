package resolve

import (
	"context"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName = "geocoder.v1.GeocoderService"
	methodName  = "Resolve"
)

// ServiceDesc описывает сервис без сгенерированного кода: запрос
// google.protobuf.StringValue, ответ google.protobuf.Struct{lat, lon}.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: methodName,
			Handler:    resolveHandler,
		},
	},
	Metadata: "geocoder.proto",
}

type Handler struct {
	useCase usecase
}

func New(u usecase) *Handler {
	return &Handler{
		useCase: u,
	}
}

func (h *Handler) Resolve(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	address := in.GetValue()
	if address == "" {
		return nil, status.Error(codes.InvalidArgument, "address is required")
	}

	lat, lon, err := h.useCase.Resolve(ctx, address)
	if err != nil {
		log.Printf("from Resolve gRPC: %v", err)
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return structpb.NewStruct(map[string]any{
		"lat": lat,
		"lon": lon,
	})
}

func resolveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	h := srv.(*Handler)
	if interceptor == nil {
		return h.Resolve(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/" + methodName,
	}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return h.Resolve(ctx, req.(*wrapperspb.StringValue))
	})
}
