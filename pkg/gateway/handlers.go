package gateway

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ojo-network/contractMonitor/app/volatile"
)

// handleBalance answers GET /cosmos/bank/v1beta1/balances/{userAddress} with
// the uscrt balance of userAddress. The address is passed to the node as-is.
func (gw *gatewayServer) handleBalance(writer http.ResponseWriter, request *http.Request) {
	requestsTotalCounter.With("route", routeBalance).Add(1)

	userAddress, err := pathParam(request, userAddressParam)
	if err != nil {
		gw.replyWithError(writer, request, routeBalance, err)
		return
	}

	coin, err := gw.chainClient.QueryBalance(request.Context(), userAddress, volatile.DenomuSCRT)
	if err != nil {
		gw.replyWithError(writer, request, routeBalance, upstreamError(err))
		return
	}

	gw.logger.Debug().
		Str("route", routeBalance).
		Str("address", userAddress).
		Str("amount", coin.Amount).
		Msg("balance query served")

	gw.replyWithJSON(writer, request, routeBalance, newBalanceResponse(coin))
}

// handleSmartQuery answers
// GET /cosmwasm/wasm/v1/contract/{contractAddress}/smart/{request}
// by forwarding the decoded request to the contract and republishing the
// request_id field of its answer.
func (gw *gatewayServer) handleSmartQuery(writer http.ResponseWriter, request *http.Request) {
	requestsTotalCounter.With("route", routeSmartQuery).Add(1)

	contractAddress, err := pathParam(request, contractAddressParam)
	if err != nil {
		gw.replyWithError(writer, request, routeSmartQuery, err)
		return
	}

	encodedQuery, err := pathParam(request, requestParam)
	if err != nil {
		gw.replyWithError(writer, request, routeSmartQuery, err)
		return
	}

	queryMsg, err := decodeSmartQueryRequest(encodedQuery)
	if err != nil {
		gw.replyWithError(writer, request, routeSmartQuery, err)
		return
	}

	result, err := gw.chainClient.QueryContract(request.Context(), contractAddress, gw.codeHash, queryMsg)
	if err != nil {
		gw.replyWithError(writer, request, routeSmartQuery, upstreamError(err))
		return
	}

	requestID, err := extractRequestID(result)
	if err != nil {
		gw.replyWithError(writer, request, routeSmartQuery, upstreamError(err))
		return
	}

	gw.logger.Debug().
		Str("route", routeSmartQuery).
		Str("contract", contractAddress).
		Msg("smart query served")

	gw.replyWithJSON(writer, request, routeSmartQuery, &SmartQueryResponse{
		Data: SmartQueryData{RequestID: requestID},
	})
}

// pathParam returns the percent-decoded value of the named route parameter.
func pathParam(request *http.Request, name string) (string, error) {
	value, err := url.PathUnescape(chi.URLParam(request, name))
	if err != nil {
		return "", ErrGatewayDecodeRequest.Wrapf("path parameter %s: %s", name, err)
	}

	return value, nil
}

// upstreamError marks err as an ErrGatewayUpstream while keeping the
// underlying query error matchable with errors.Is.
func upstreamError(err error) error {
	return fmt.Errorf("%w: %w", ErrGatewayUpstream, err)
}
