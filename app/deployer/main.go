package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/database/redisclient"
	"github.com/Beat1ngHeart/Custom-NFT/base/ethereum"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain/contract"
	"github.com/Beat1ngHeart/Custom-NFT/service/chain"
	contract_repository "github.com/Beat1ngHeart/Custom-NFT/stores/contract/repository"
	contract_usecase "github.com/Beat1ngHeart/Custom-NFT/stores/contract/usecase"
)

var (
	configFile   = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	bytecode     = pflag.String("bytecode", "", "0x prefixed creation bytecode")
	bytecodeFile = pflag.String("bytecode-file", "", "file holding the creation bytecode, used when --bytecode is empty")
	envFile      = pflag.String("env-file", "", "append NFT_CONTRACT_ADDRESS=<address> to this file")
	timeout      = pflag.Duration("timeout", 5*time.Minute, "give up waiting for the deployment after this long")
)

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	log.Init(viper.GetBool("debug"))
}

func readBytecode() (string, error) {
	if len(*bytecode) > 0 {
		return strings.TrimSpace(*bytecode), nil
	}
	if len(*bytecodeFile) == 0 {
		return "", fmt.Errorf("one of --bytecode or --bytecode-file is required")
	}
	data, err := os.ReadFile(*bytecodeFile)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func main() {
	defer log.Sync()

	context, cancel := ctx.WithTimeout(ctx.Background(), *timeout)
	defer cancel()

	code, err := readBytecode()
	if err != nil {
		context.WithField("err", err).Error("readBytecode failed")
		os.Exit(2)
	}

	ethClient, err := ethclient.DialContext(context, viper.GetString("chain.rpcUrl"))
	if err != nil {
		context.WithField("err", err).Panic("ethclient.DialContext failed")
	}
	walletClient, err := rpc.DialContext(context, viper.GetString("chain.walletUrl"))
	if err != nil {
		context.WithField("err", err).Panic("rpc.DialContext failed")
	}
	defer walletClient.Close()

	chainClient := chain.NewClient(ethereum.NewThrottledClient(ethClient, 1), walletClient, chain.ClientCfg{})

	// without redis the address is only printed
	var repo contract.Repository = contract_repository.NewMemoryRepo()
	if uri := viper.GetString("redis.uri"); len(uri) > 0 {
		pool, err := redisclient.ConnectRedis(uri, viper.GetString("redis.pwd"))
		if err != nil {
			context.WithField("err", err).Warn("redis unreachable, deployed address won't be stored")
		} else {
			defer pool.Close()
			repo = contract_repository.NewRedisRepo(pool)
		}
	}

	dep, err := contract_usecase.New(&contract_usecase.ContractUseCaseCfg{
		Chain: chainClient,
		Repo:  repo,
	}).Deploy(context, code)
	if err != nil {
		context.WithField("err", err).Error("deploy failed")
		os.Exit(1)
	}

	if len(*envFile) > 0 {
		f, err := os.OpenFile(*envFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			context.WithField("err", err).Panic("open env file failed")
		}
		defer f.Close()
		if _, err := fmt.Fprintln(f, dep.EnvContent); err != nil {
			context.WithField("err", err).Panic("write env file failed")
		}
	}

	context.WithFields(log.Fields{
		"address": dep.Address,
		"txHash":  dep.TxHash,
	}).Info("contract deployed")
	fmt.Println(dep.EnvContent)
}
